// File: database/repository/reference/mongo.go
package referenceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"rane/models"
)

func (r *mongoReferenceRepo) GetTopics(ctx context.Context) ([]models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.topics.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var topics []models.Topic
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *mongoReferenceRepo) GetTopicByID(ctx context.Context, id string) (*models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var topic models.Topic
	if err := r.topics.FindOne(ctx, bson.M{"id": id}).Decode(&topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *mongoReferenceRepo) GetPractitioners(ctx context.Context) ([]models.Practitioner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.practitioners.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *mongoReferenceRepo) GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Practitioner
	if err := r.practitioners.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
