package wizard

import "rane/models"

// stepOrder is the fixed wizard path. The intake step is conditionally
// elided; that skip is encoded here and nowhere else.
var stepOrder = []models.StepID{
	models.StepTopic,
	models.StepTherapist,
	models.StepSlot,
	models.StepVisited,
	models.StepIntake,
	models.StepConfirm,
}

func stepIndex(step models.StepID) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// NextStep advances one position in the fixed order. When the proposed next
// step is intake and the triage answer is "yes", the intake step is skipped
// and the path goes straight to confirm. At the last step (and for unknown
// steps) the current step is returned unchanged.
func NextStep(current models.StepID, visited models.VisitedAnswer) models.StepID {
	idx := stepIndex(current)
	if idx < 0 || idx == len(stepOrder)-1 {
		return current
	}
	next := stepOrder[idx+1]
	if next == models.StepIntake && visited == models.VisitedYes {
		return models.StepConfirm
	}
	return next
}

// PrevStep retreats one position. Retreating from confirm after intake was
// elided lands on visited, not intake. At the first step (and for unknown
// steps) the current step is returned unchanged.
func PrevStep(current models.StepID, visited models.VisitedAnswer) models.StepID {
	idx := stepIndex(current)
	if idx <= 0 {
		return current
	}
	prev := stepOrder[idx-1]
	if prev == models.StepIntake && visited == models.VisitedYes {
		return models.StepVisited
	}
	return prev
}

// EffectiveSteps returns the path the session will actually traverse, for
// progress indication.
func EffectiveSteps(visited models.VisitedAnswer) []models.StepID {
	steps := make([]models.StepID, 0, len(stepOrder))
	for _, s := range stepOrder {
		if s == models.StepIntake && visited == models.VisitedYes {
			continue
		}
		steps = append(steps, s)
	}
	return steps
}
