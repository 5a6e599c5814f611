// File: services/wizard/actions.go
package wizard

import (
	"context"
	"fmt"

	"rane/models"
	"rane/utils"

	"go.uber.org/zap"
)

// clearDownstreamOfTopic resets everything that depended on the previous
// topic so stale selections cannot survive the change.
func clearDownstreamOfTopic(session *models.WizardSession) {
	session.TherapistID = ""
	session.Date = ""
	session.SelectedSlot = nil
	session.VisitedAnswer = ""
	session.AgreedToTerms = false
	session.Submitted = false
	session.TrackingCode = ""
	session.ShowAll = false
}

// clearDownstreamOfTherapist resets the slot and everything after it.
func clearDownstreamOfTherapist(session *models.WizardSession) {
	session.Date = ""
	session.SelectedSlot = nil
	session.AgreedToTerms = false
	session.Submitted = false
	session.TrackingCode = ""
}

// SelectTopic sets the active topic and cascade-clears dependent state.
func (s *DefaultWizardService) SelectTopic(sessionID, topicID string) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	topic, err := s.Refs.GetTopicByID(ctx, topicID)
	if err != nil || topic == nil {
		return nil, fmt.Errorf("topic %q is not in the reference list", topicID)
	}

	if session.TopicID != topic.ID {
		clearDownstreamOfTopic(session)
	}
	session.TopicID = topic.ID

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTherapist sets the chosen practitioner and cascade-clears the slot,
// agreement and submission.
func (s *DefaultWizardService) SelectTherapist(sessionID, therapistID string) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, err := s.Refs.GetPractitionerByID(ctx, therapistID)
	if err != nil || p == nil {
		return nil, fmt.Errorf("practitioner %q is not in the reference list", therapistID)
	}

	if session.TherapistID != p.ID {
		clearDownstreamOfTherapist(session)
	}
	session.TherapistID = p.ID

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot picks a time on a date. The slot must exist in the resolved
// list for that date and be available; the busy level never gates anything.
func (s *DefaultWizardService) SelectSlot(sessionID, date, slotTime string) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slots, err := s.SlotsForDate(date)
	if err != nil {
		return nil, err
	}
	var picked *models.Slot
	for i := range slots {
		if slots[i].Time == slotTime {
			picked = &slots[i]
			break
		}
	}
	if picked == nil {
		return nil, fmt.Errorf("slot %q is not offered on %s", slotTime, date)
	}
	if !picked.Available {
		return nil, fmt.Errorf("slot %q on %s is not available", slotTime, date)
	}

	session.Date = date
	chosen := *picked
	session.SelectedSlot = &chosen
	session.AgreedToTerms = false
	session.Submitted = false
	session.TrackingCode = ""

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetVisitedAnswer records the triage response. Unknown answers are treated
// as unanswered rather than rejected.
func (s *DefaultWizardService) SetVisitedAnswer(sessionID string, answer models.VisitedAnswer) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if answer != models.VisitedYes && answer != models.VisitedNo {
		answer = ""
	}
	session.VisitedAnswer = answer

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdatePersonalInfo merges a partial edit of the identity fields. The phone
// number is normalized as it is stored. Personal info is frozen once the
// session is submitted.
func (s *DefaultWizardService) UpdatePersonalInfo(sessionID string, update models.PersonalInfoUpdate) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}

	update.Apply(&session.PersonalInfo)
	session.PersonalInfo.PhoneRaw = NormalizePhone(session.PersonalInfo.PhoneRaw)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateIntake merges a partial edit of the intake questionnaire.
func (s *DefaultWizardService) UpdateIntake(sessionID string, update models.IntakeUpdate) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	update.Apply(&session.Intake)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleAgreement sets the terms-agreement flag.
func (s *DefaultWizardService) ToggleAgreement(sessionID string, agreed bool) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.AgreedToTerms = agreed

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetShowAll toggles the bypass of the recommendation filter. The underlying
// reference data is never touched.
func (s *DefaultWizardService) SetShowAll(sessionID string, showAll bool) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ShowAll = showAll

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GoNext advances one step when the current step's guard passes. A guard
// rejection is a silent no-op: the unchanged session is returned with
// moved == false and no error.
func (s *DefaultWizardService) GoNext(sessionID string) (*models.WizardSession, bool, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	if !CanAdvance(session.CurrentStep, session) {
		return session, false, nil
	}
	next := NextStep(session.CurrentStep, session.VisitedAnswer)
	if next == session.CurrentStep {
		return session, false, nil
	}
	session.CurrentStep = next

	if err := s.saveSession(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

// GoPrev retreats one step, honoring the elided intake step on the way back.
func (s *DefaultWizardService) GoPrev(sessionID string) (*models.WizardSession, bool, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	prev := PrevStep(session.CurrentStep, session.VisitedAnswer)
	if prev == session.CurrentStep {
		return session, false, nil
	}
	session.CurrentStep = prev

	if err := s.saveSession(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

// EffectivePath returns the steps this session will traverse.
func (s *DefaultWizardService) EffectivePath(sessionID string) ([]models.StepID, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return EffectiveSteps(session.VisitedAnswer), nil
}

// PractitionersForSession returns the recommended practitioners for the
// session's topic, or the full list when the show-all override is set.
func (s *DefaultWizardService) PractitionersForSession(sessionID string) ([]models.Practitioner, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	all, err := s.Refs.GetPractitioners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioners: %w", err)
	}
	if session.ShowAll || session.TopicID == "" {
		return all, nil
	}

	topic, err := s.Refs.GetTopicByID(ctx, session.TopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topic %q: %w", session.TopicID, err)
	}
	return RecommendPractitioners(topic, all), nil
}

// SlotsForDate resolves the bookable slots for a date: the authoritative
// table entry when one exists, the deterministic fallback otherwise. A
// schedule lookup failure degrades to the fallback as well.
func (s *DefaultWizardService) SlotsForDate(date string) ([]models.Slot, error) {
	ctx := context.Background()

	if s.Schedule != nil {
		slots, err := s.Schedule.GetDaySlots(ctx, date)
		if err != nil {
			utils.GetLogger().Warn("SlotsForDate: schedule lookup failed, synthesizing",
				zap.String("date", date), zap.Error(err))
		} else if len(slots) > 0 {
			return slots, nil
		}
	}
	return SynthesizeSlots(date), nil
}
