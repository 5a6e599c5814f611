package models

// Topic is an immutable reference entry describing one concern area
// (e.g. anxiety, couples, child). Selecting one sets the active topic
// for the wizard session.
type Topic struct {
	ID    string   `bson:"id" json:"id"`
	Title string   `bson:"title" json:"title"`
	Hint  string   `bson:"hint,omitempty" json:"hint,omitempty"`
	Tags  []string `bson:"tags" json:"tags"`
}
