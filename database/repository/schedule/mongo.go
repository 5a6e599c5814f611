// File: database/repository/schedule/mongo.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rane/models"
)

func (r *mongoScheduleRepo) GetDaySlots(ctx context.Context, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.DaySchedule
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&day)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return day.Slots, nil
}

func (r *mongoScheduleRepo) SetDaySlots(ctx context.Context, date string, slots []models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"date": date},
		bson.M{"$set": models.DaySchedule{Date: date, Slots: slots}},
		options.Update().SetUpsert(true),
	)
	return err
}
