package wizard

import (
	"strings"

	"rane/models"
)

// childTopicID marks the topic whose selection makes the child sub-fields
// mandatory.
const childTopicID = "child"

// CanAdvance reports whether the session may leave the given step. It is a
// pure predicate: it never mutates the session and is safe to re-evaluate on
// every state change.
func CanAdvance(step models.StepID, s *models.WizardSession) bool {
	if s == nil {
		return false
	}
	switch step {
	case models.StepTopic:
		return s.TopicID != ""
	case models.StepTherapist:
		return s.TherapistID != ""
	case models.StepSlot:
		return s.SelectedSlot != nil
	case models.StepVisited:
		return triageAnswered(s) && personalInfoComplete(s.PersonalInfo)
	case models.StepIntake:
		return identityStillValid(s.PersonalInfo) && intakeComplete(s)
	case models.StepConfirm:
		return s.AgreedToTerms
	default:
		return false
	}
}

// triageAnswered and personalInfoComplete are kept as separate predicates so
// the visited step can later be split without touching the guard's callers.
func triageAnswered(s *models.WizardSession) bool {
	return s.VisitedAnswer == models.VisitedYes || s.VisitedAnswer == models.VisitedNo
}

func personalInfoComplete(p models.PersonalInfo) bool {
	if strings.TrimSpace(p.FullName) == "" {
		return false
	}
	if !ValidPhone(p.PhoneRaw) {
		return false
	}
	if !ValidNationalID(p.NationalID) {
		return false
	}
	if !ValidAge(p.Age) {
		return false
	}
	return ValidInsurance(p.HasInsurance, p.InsuranceType)
}

// identityStillValid re-checks the identity fields on the intake step.
func identityStillValid(p models.PersonalInfo) bool {
	return strings.TrimSpace(p.FullName) != "" &&
		ValidPhone(p.PhoneRaw) &&
		ValidNationalID(p.NationalID)
}

// childCase holds when the active topic is the child topic or the user has
// explicitly flagged the case as child-related.
func childCase(s *models.WizardSession) bool {
	return s.TopicID == childTopicID || s.Intake.IsChildCase
}

func intakeComplete(s *models.WizardSession) bool {
	a := s.Intake
	if a.AgeBracket == "" || a.CommunicationStyle == "" || a.MainConcern == "" {
		return false
	}
	if a.MainConcern == "other" && strings.TrimSpace(a.MainConcernOther) == "" {
		return false
	}
	if a.PressureLevel == "" || a.FirstSessionFocus == "" || a.TimeOfDayPreference == "" {
		return false
	}
	if childCase(s) {
		if strings.TrimSpace(a.ChildAge) == "" || a.RelationToChild == "" {
			return false
		}
		if a.RelationToChild == "other" && strings.TrimSpace(a.RelationOther) == "" {
			return false
		}
	}
	return true
}
