package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rane/models"
)

func TestNextStep(t *testing.T) {
	tests := []struct {
		name    string
		current models.StepID
		visited models.VisitedAnswer
		want    models.StepID
	}{
		{"topic to therapist", models.StepTopic, "", models.StepTherapist},
		{"therapist to slot", models.StepTherapist, "", models.StepSlot},
		{"slot to visited", models.StepSlot, "", models.StepVisited},
		{"visited no goes to intake", models.StepVisited, models.VisitedNo, models.StepIntake},
		{"visited yes skips intake", models.StepVisited, models.VisitedYes, models.StepConfirm},
		{"intake to confirm", models.StepIntake, models.VisitedNo, models.StepConfirm},
		{"confirm is terminal", models.StepConfirm, models.VisitedNo, models.StepConfirm},
		{"unknown step unchanged", models.StepID("bogus"), "", models.StepID("bogus")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStep(tt.current, tt.visited))
		})
	}
}

func TestPrevStep(t *testing.T) {
	tests := []struct {
		name    string
		current models.StepID
		visited models.VisitedAnswer
		want    models.StepID
	}{
		{"topic is a boundary no-op", models.StepTopic, models.VisitedYes, models.StepTopic},
		{"topic no-op regardless of answer", models.StepTopic, "", models.StepTopic},
		{"therapist back to topic", models.StepTherapist, "", models.StepTopic},
		{"confirm back to intake when taken", models.StepConfirm, models.VisitedNo, models.StepIntake},
		{"confirm back to visited when intake elided", models.StepConfirm, models.VisitedYes, models.StepVisited},
		{"intake back to visited", models.StepIntake, models.VisitedNo, models.StepVisited},
		{"unknown step unchanged", models.StepID("bogus"), "", models.StepID("bogus")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevStep(tt.current, tt.visited))
		})
	}
}

func TestEffectiveSteps(t *testing.T) {
	full := EffectiveSteps(models.VisitedNo)
	assert.Equal(t, []models.StepID{
		models.StepTopic, models.StepTherapist, models.StepSlot,
		models.StepVisited, models.StepIntake, models.StepConfirm,
	}, full)

	short := EffectiveSteps(models.VisitedYes)
	assert.Equal(t, []models.StepID{
		models.StepTopic, models.StepTherapist, models.StepSlot,
		models.StepVisited, models.StepConfirm,
	}, short)

	// Unanswered triage shows the full path.
	assert.Equal(t, full, EffectiveSteps(""))
}
