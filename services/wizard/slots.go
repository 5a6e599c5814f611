package wizard

import (
	"strconv"

	"rane/models"
)

// fallbackTimes are the candidate times synthesized when no authoritative
// schedule exists for a date.
var fallbackTimes = []string{"09:00", "10:30", "12:00", "14:00", "16:00", "18:00", "20:00"}

// ResolveSlots returns the bookable slots for dateKey. An authoritative,
// non-empty table entry is returned verbatim in its caller-supplied order;
// otherwise a deterministic fallback set is synthesized so the same dateKey
// always yields the same list.
func ResolveSlots(dateKey string, table map[string][]models.Slot) []models.Slot {
	if day, ok := table[dateKey]; ok && len(day) > 0 {
		return day
	}
	return SynthesizeSlots(dateKey)
}

// SynthesizeSlots builds the fallback slot list for a date. Busy levels cycle
// with (day+i) mod 3 and every synthesized slot is available; the fallback
// never manufactures unavailability.
func SynthesizeSlots(dateKey string) []models.Slot {
	day := dayOfDateKey(dateKey)
	slots := make([]models.Slot, 0, len(fallbackTimes))
	for i, t := range fallbackTimes {
		var level models.BusyLevel
		switch (day + i) % 3 {
		case 0:
			level = models.LevelQuiet
		case 1:
			level = models.LevelNormal
		default:
			level = models.LevelBusy
		}
		slots = append(slots, models.Slot{Time: t, Level: level, Available: true})
	}
	return slots
}

// dayOfDateKey reads the trailing two characters of the date key as a day
// number, falling back to 1 when they do not parse.
func dayOfDateKey(dateKey string) int {
	if len(dateKey) < 2 {
		return 1
	}
	day, err := strconv.Atoi(dateKey[len(dateKey)-2:])
	if err != nil || day < 0 {
		return 1
	}
	return day
}
