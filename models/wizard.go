package models

import "time"

// StepID identifies one step of the booking wizard.
type StepID string

const (
	StepTopic     StepID = "topic"
	StepTherapist StepID = "therapist"
	StepSlot      StepID = "slot"
	StepVisited   StepID = "visited"
	StepIntake    StepID = "intake"
	StepConfirm   StepID = "confirm"
)

// VisitedAnswer is the triage response: has this user sought this kind of
// help before. "yes" elides the intake step from the effective path.
type VisitedAnswer string

const (
	VisitedYes VisitedAnswer = "yes"
	VisitedNo  VisitedAnswer = "no"
)

// WizardSession holds all state for one booking attempt. It lives in Redis
// between user actions and is owned exclusively by the wizard service.
type WizardSession struct {
	SessionID     string         `json:"sessionId"`
	CurrentStep   StepID         `json:"currentStep"`
	TopicID       string         `json:"topicId,omitempty"`
	TherapistID   string         `json:"therapistId,omitempty"`
	Date          string         `json:"date,omitempty"` // "YYYY-MM-DD"
	SelectedSlot  *Slot          `json:"selectedSlot,omitempty"`
	VisitedAnswer VisitedAnswer  `json:"visitedAnswer,omitempty"`
	PersonalInfo  PersonalInfo   `json:"personalInfo"`
	Intake        IntakeAnswers  `json:"intake"`
	AgreedToTerms bool           `json:"agreedToTerms"`
	ShowAll       bool           `json:"showAllPractitioners"`
	Submitted     bool           `json:"submitted"`
	TrackingCode  string         `json:"trackingCode,omitempty"`
	DeviceID      string         `json:"deviceId,omitempty"`
	UserAgent     string         `json:"userAgent,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}
