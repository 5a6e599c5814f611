package models

// BusyLevel describes expected load for a slot. It is informational only;
// bookability is gated exclusively by Available.
type BusyLevel string

const (
	LevelQuiet  BusyLevel = "quiet"
	LevelNormal BusyLevel = "normal"
	LevelBusy   BusyLevel = "busy"
)

// Slot is one offerable appointment time on a given date.
type Slot struct {
	Time      string    `bson:"time" json:"time"`
	Level     BusyLevel `bson:"level" json:"level"`
	Available bool      `bson:"available" json:"available"`
}

// DaySchedule is the authoritative slot table entry for one date.
type DaySchedule struct {
	Date  string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots []Slot `bson:"slots" json:"slots"`
}
