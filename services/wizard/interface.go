package wizard

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	referenceRepo "rane/database/repository/reference"
	scheduleRepo "rane/database/repository/schedule"
	"rane/models"
)

// WizardService manages the stateful booking wizard session.
type WizardService interface {
	StartSession(preselectedPractitionerID, deviceID, userAgent string) (*models.WizardSession, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	CancelSession(sessionID string) error
	Restart(sessionID string) (*models.WizardSession, error)

	SelectTopic(sessionID, topicID string) (*models.WizardSession, error)
	SelectTherapist(sessionID, therapistID string) (*models.WizardSession, error)
	SelectSlot(sessionID, date, slotTime string) (*models.WizardSession, error)
	SetVisitedAnswer(sessionID string, answer models.VisitedAnswer) (*models.WizardSession, error)
	UpdatePersonalInfo(sessionID string, update models.PersonalInfoUpdate) (*models.WizardSession, error)
	UpdateIntake(sessionID string, update models.IntakeUpdate) (*models.WizardSession, error)
	ToggleAgreement(sessionID string, agreed bool) (*models.WizardSession, error)
	SetShowAll(sessionID string, showAll bool) (*models.WizardSession, error)

	GoNext(sessionID string) (*models.WizardSession, bool, error)
	GoPrev(sessionID string) (*models.WizardSession, bool, error)
	Submit(sessionID string) (*models.BookingSummary, error)

	// Derived, read-only views.
	EffectivePath(sessionID string) ([]models.StepID, error)
	PractitionersForSession(sessionID string) ([]models.Practitioner, error)
	SlotsForDate(date string) ([]models.Slot, error)
}

// DefaultWizardService implements WizardService. Reference data, the
// authoritative schedule, and the session cache are injected so tests can
// substitute them.
type DefaultWizardService struct {
	Refs       referenceRepo.Repository
	Schedule   scheduleRepo.Repository
	Cache      *redis.Client
	TaskClient *asynq.Client // optional; nil disables confirmation tasks
	SessionTTL time.Duration
}
