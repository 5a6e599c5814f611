// File: services/wizard/finalize.go
package wizard

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"rane/models"
	"rane/services/tasks"
	"rane/utils"
)

const (
	trackingPrefix = "RANE-"
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateTrackingCode builds a token of the form RANE-XXXX-NNNN: four random
// base36 characters and the last four digits of the current timestamp. The
// token is presentation-level only; uniqueness is not guaranteed.
func GenerateTrackingCode() string {
	var b strings.Builder
	b.WriteString(trackingPrefix)
	for i := 0; i < 4; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return fmt.Sprintf("%s-%04d", b.String(), time.Now().UnixMilli()%10000)
}

// Submit finalizes the booking. It is only valid at the confirm step with a
// passing guard, and is idempotent once the session is submitted: repeated
// calls return the stored tracking code until Restart.
func (s *DefaultWizardService) Submit(sessionID string) (*models.BookingSummary, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Submitted {
		return s.buildSummary(ctx, session)
	}
	if session.CurrentStep != models.StepConfirm || !CanAdvance(models.StepConfirm, session) {
		return nil, ErrNotReady
	}

	session.Submitted = true
	session.TrackingCode = GenerateTrackingCode()
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	summary, err := s.buildSummary(ctx, session)
	if err != nil {
		return nil, err
	}
	s.enqueueConfirmation(session, summary)
	return summary, nil
}

// buildSummary produces the display-only projection of the finished wizard.
func (s *DefaultWizardService) buildSummary(ctx context.Context, session *models.WizardSession) (*models.BookingSummary, error) {
	topic, err := s.Refs.GetTopicByID(ctx, session.TopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topic %q: %w", session.TopicID, err)
	}
	practitioner, err := s.Refs.GetPractitionerByID(ctx, session.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioner %q: %w", session.TherapistID, err)
	}
	if session.SelectedSlot == nil {
		return nil, ErrNotReady
	}

	p := session.PersonalInfo
	return &models.BookingSummary{
		TrackingCode:     session.TrackingCode,
		TopicTitle:       topic.Title,
		PractitionerName: practitioner.Name,
		Date:             session.Date,
		Time:             session.SelectedSlot.Time,
		Level:            session.SelectedSlot.Level,
		FullName:         strings.TrimSpace(p.FullName),
		Phone:            NormalizePhone(p.PhoneRaw),
		NationalID:       strings.TrimSpace(p.NationalID),
		Age:              p.Age,
		HasInsurance:     p.HasInsurance,
		InsuranceType:    strings.TrimSpace(p.InsuranceType),
		SubmittedAt:      time.Now(),
	}, nil
}

// enqueueConfirmation hands the finished booking to the task queue. Enqueue
// failures are logged and never fail the submit.
func (s *DefaultWizardService) enqueueConfirmation(session *models.WizardSession, summary *models.BookingSummary) {
	if s.TaskClient == nil {
		return
	}
	logger := utils.GetLogger()

	task, opts, err := tasks.NewConfirmationTask(models.BookingConfirmationPayload{
		TrackingCode:     summary.TrackingCode,
		SessionID:        session.SessionID,
		FullName:         summary.FullName,
		Phone:            summary.Phone,
		PractitionerName: summary.PractitionerName,
		Date:             summary.Date,
		Time:             summary.Time,
	})
	if err != nil {
		logger.Error("Submit: failed to build confirmation task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Error("Submit: failed to enqueue confirmation task",
			zap.String("trackingCode", summary.TrackingCode), zap.Error(err))
	}
}
