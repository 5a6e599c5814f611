// File: database/repository/reference/static.go
package referenceRepo

import (
	"context"
	"fmt"

	"rane/models"
)

// staticReferenceRepo serves the built-in catalog. It backs development and
// tests, and doubles as the seed source for the Mongo collections.
type staticReferenceRepo struct{}

// NewStaticReferenceRepo constructs a Repository over the built-in catalog.
func NewStaticReferenceRepo() Repository {
	return &staticReferenceRepo{}
}

var topicCatalog = []models.Topic{
	{
		ID:    "anxiety",
		Title: "Anxiety & Stress",
		Hint:  "Persistent worry, panic, or feeling constantly on edge",
		Tags:  []string{"anxiety", "stress", "panic"},
	},
	{
		ID:    "depression",
		Title: "Low Mood & Depression",
		Hint:  "Loss of interest, low energy, or a heavy mood that will not lift",
		Tags:  []string{"depression", "mood"},
	},
	{
		ID:    "relationship",
		Title: "Couples & Relationships",
		Hint:  "Conflict, distance, or communication problems with a partner",
		Tags:  []string{"couples", "relationship", "family"},
	},
	{
		ID:    "child",
		Title: "Child & Adolescent",
		Hint:  "Concerns about a child's behaviour, school, or emotions",
		Tags:  []string{"child", "adolescent", "parenting"},
	},
	{
		ID:    "trauma",
		Title: "Trauma & Grief",
		Hint:  "Coping after loss, accident, or a distressing experience",
		Tags:  []string{"trauma", "grief", "ptsd"},
	},
	{
		ID:    "habits",
		Title: "Habits & Compulsions",
		Hint:  "Unwanted rituals, checking, or behaviours that are hard to stop",
		Tags:  []string{"ocd", "habits", "addiction"},
	},
}

var practitionerCatalog = []models.Practitioner{
	{
		ID:        "p-moradi",
		Name:      "Dr. Leila Moradi",
		Specialty: "Clinical psychologist, CBT",
		Tags:      []string{"anxiety", "stress", "ocd"},
	},
	{
		ID:        "p-karimi",
		Name:      "Dr. Arash Karimi",
		Specialty: "Psychiatrist, mood disorders",
		Tags:      []string{"depression", "mood", "anxiety"},
	},
	{
		ID:        "p-ahmadi",
		Name:      "Sara Ahmadi",
		Specialty: "Couples and family therapist",
		Tags:      []string{"couples", "relationship", "family"},
	},
	{
		ID:        "p-hosseini",
		Name:      "Dr. Niloofar Hosseini",
		Specialty: "Child and adolescent psychologist",
		Tags:      []string{"child", "adolescent", "parenting"},
	},
	{
		ID:        "p-rahimi",
		Name:      "Dr. Kaveh Rahimi",
		Specialty: "Trauma-focused therapist, EMDR",
		Tags:      []string{"trauma", "grief", "ptsd"},
	},
	{
		ID:        "p-nazari",
		Name:      "Mina Nazari",
		Specialty: "Behavioural therapist",
		Tags:      []string{"habits", "ocd", "addiction"},
	},
	{
		ID:        "p-jafari",
		Name:      "Dr. Omid Jafari",
		Specialty: "General psychotherapist",
		Tags:      []string{"stress", "mood", "relationship"},
	},
}

func (r *staticReferenceRepo) GetTopics(ctx context.Context) ([]models.Topic, error) {
	out := make([]models.Topic, len(topicCatalog))
	copy(out, topicCatalog)
	return out, nil
}

func (r *staticReferenceRepo) GetTopicByID(ctx context.Context, id string) (*models.Topic, error) {
	for _, t := range topicCatalog {
		if t.ID == id {
			topic := t
			return &topic, nil
		}
	}
	return nil, fmt.Errorf("topic with ID %s not found", id)
}

func (r *staticReferenceRepo) GetPractitioners(ctx context.Context) ([]models.Practitioner, error) {
	out := make([]models.Practitioner, len(practitionerCatalog))
	copy(out, practitionerCatalog)
	return out, nil
}

func (r *staticReferenceRepo) GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error) {
	for _, p := range practitionerCatalog {
		if p.ID == id {
			practitioner := p
			return &practitioner, nil
		}
	}
	return nil, fmt.Errorf("practitioner with ID %s not found", id)
}
