package models

// IntakeAnswers is the extended questionnaire, collected only for users
// without prior visit history. Child sub-fields are required if and only if
// the active topic is the child topic or IsChildCase was flagged explicitly.
type IntakeAnswers struct {
	AgeBracket          string   `json:"ageBracket,omitempty"`
	CommunicationStyle  string   `json:"communicationStyle,omitempty"`
	MainConcern         string   `json:"mainConcern,omitempty"`
	MainConcernOther    string   `json:"mainConcernOther,omitempty"`
	Goals               []string `json:"goals,omitempty"`
	PressureLevel       string   `json:"pressureLevel,omitempty"`
	FirstSessionFocus   string   `json:"firstSessionFocus,omitempty"`
	TimeOfDayPreference string   `json:"timeOfDayPreference,omitempty"`
	IsChildCase         bool     `json:"isChildCase,omitempty"`
	ChildAge            string   `json:"childAge,omitempty"`
	RelationToChild     string   `json:"relationToChild,omitempty"`
	RelationOther       string   `json:"relationOther,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// IntakeUpdate carries a partial edit; nil fields are left unchanged.
type IntakeUpdate struct {
	AgeBracket          *string   `json:"ageBracket,omitempty"`
	CommunicationStyle  *string   `json:"communicationStyle,omitempty"`
	MainConcern         *string   `json:"mainConcern,omitempty"`
	MainConcernOther    *string   `json:"mainConcernOther,omitempty"`
	Goals               *[]string `json:"goals,omitempty"`
	PressureLevel       *string   `json:"pressureLevel,omitempty"`
	FirstSessionFocus   *string   `json:"firstSessionFocus,omitempty"`
	TimeOfDayPreference *string   `json:"timeOfDayPreference,omitempty"`
	IsChildCase         *bool     `json:"isChildCase,omitempty"`
	ChildAge            *string   `json:"childAge,omitempty"`
	RelationToChild     *string   `json:"relationToChild,omitempty"`
	RelationOther       *string   `json:"relationOther,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
}

// Apply merges the update into a.
func (u IntakeUpdate) Apply(a *IntakeAnswers) {
	if u.AgeBracket != nil {
		a.AgeBracket = *u.AgeBracket
	}
	if u.CommunicationStyle != nil {
		a.CommunicationStyle = *u.CommunicationStyle
	}
	if u.MainConcern != nil {
		a.MainConcern = *u.MainConcern
	}
	if u.MainConcernOther != nil {
		a.MainConcernOther = *u.MainConcernOther
	}
	if u.Goals != nil {
		a.Goals = *u.Goals
	}
	if u.PressureLevel != nil {
		a.PressureLevel = *u.PressureLevel
	}
	if u.FirstSessionFocus != nil {
		a.FirstSessionFocus = *u.FirstSessionFocus
	}
	if u.TimeOfDayPreference != nil {
		a.TimeOfDayPreference = *u.TimeOfDayPreference
	}
	if u.IsChildCase != nil {
		a.IsChildCase = *u.IsChildCase
	}
	if u.ChildAge != nil {
		a.ChildAge = *u.ChildAge
	}
	if u.RelationToChild != nil {
		a.RelationToChild = *u.RelationToChild
	}
	if u.RelationOther != nil {
		a.RelationOther = *u.RelationOther
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
}
