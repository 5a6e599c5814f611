// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"rane/database"
	"rane/models"
)

// Repository holds the authoritative per-day slot tables. A date with no
// entry returns (nil, nil); callers fall back to synthesized availability.
type Repository interface {
	GetDaySlots(ctx context.Context, date string) ([]models.Slot, error)
	SetDaySlots(ctx context.Context, date string, slots []models.Slot) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB-backed schedule Repository.
func NewMongoScheduleRepo(dbName string) Repository {
	db := database.MongoClient.Database(dbName)
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
