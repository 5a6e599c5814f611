package models

// Practitioner is an immutable reference entry for a therapist.
// Recommendation filters practitioners by tag overlap with the active topic.
type Practitioner struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Specialty string   `bson:"specialty" json:"specialty"`
	Tags      []string `bson:"tags" json:"tags"`
}
