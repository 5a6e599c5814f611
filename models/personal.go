package models

// PersonalInfo is collected on the triage step and validated continuously
// as the user types. It is never mutated after submission.
type PersonalInfo struct {
	FullName      string `json:"fullName"`
	PhoneRaw      string `json:"phoneRaw"`
	NationalID    string `json:"nationalId"`
	Age           int    `json:"age"`
	HasInsurance  bool   `json:"hasInsurance"`
	InsuranceType string `json:"insuranceType,omitempty"`
}

// PersonalInfoUpdate carries a partial edit; nil fields are left unchanged.
type PersonalInfoUpdate struct {
	FullName      *string `json:"fullName,omitempty"`
	PhoneRaw      *string `json:"phoneRaw,omitempty"`
	NationalID    *string `json:"nationalId,omitempty"`
	Age           *int    `json:"age,omitempty"`
	HasInsurance  *bool   `json:"hasInsurance,omitempty"`
	InsuranceType *string `json:"insuranceType,omitempty"`
}

// Apply merges the update into p.
func (u PersonalInfoUpdate) Apply(p *PersonalInfo) {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.PhoneRaw != nil {
		p.PhoneRaw = *u.PhoneRaw
	}
	if u.NationalID != nil {
		p.NationalID = *u.NationalID
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.HasInsurance != nil {
		p.HasInsurance = *u.HasInsurance
	}
	if u.InsuranceType != nil {
		p.InsuranceType = *u.InsuranceType
	}
}
