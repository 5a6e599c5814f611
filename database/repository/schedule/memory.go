// File: database/repository/schedule/memory.go
package scheduleRepo

import (
	"context"
	"sync"

	"rane/models"
)

// memoryScheduleRepo keeps day schedules in memory. Used in development and
// tests where no Mongo instance holds an authoritative table.
type memoryScheduleRepo struct {
	mu   sync.RWMutex
	days map[string][]models.Slot
}

// NewMemoryScheduleRepo constructs an empty in-memory schedule Repository.
func NewMemoryScheduleRepo() Repository {
	return &memoryScheduleRepo{days: make(map[string][]models.Slot)}
}

func (r *memoryScheduleRepo) GetDaySlots(ctx context.Context, date string) ([]models.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slots, ok := r.days[date]
	if !ok {
		return nil, nil
	}
	out := make([]models.Slot, len(slots))
	copy(out, slots)
	return out, nil
}

func (r *memoryScheduleRepo) SetDaySlots(ctx context.Context, date string, slots []models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]models.Slot, len(slots))
	copy(stored, slots)
	r.days[date] = stored
	return nil
}
