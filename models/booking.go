package models

import "time"

// BookingSummary is the human-presentable projection produced on submit.
// It is display-only and not part of the persisted invariant surface.
type BookingSummary struct {
	TrackingCode     string    `json:"trackingCode"`
	TopicTitle       string    `json:"topicTitle"`
	PractitionerName string    `json:"practitionerName"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Level            BusyLevel `json:"level"`
	FullName         string    `json:"fullName"`
	Phone            string    `json:"phone"`
	NationalID       string    `json:"nationalId"`
	Age              int       `json:"age"`
	HasInsurance     bool      `json:"hasInsurance"`
	InsuranceType    string    `json:"insuranceType,omitempty"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

// BookingConfirmationPayload is handed to the confirmation task after submit.
type BookingConfirmationPayload struct {
	TrackingCode     string `json:"trackingCode"`
	SessionID        string `json:"sessionId"`
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	PractitionerName string `json:"practitionerName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
}
