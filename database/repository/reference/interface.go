// File: database/repository/reference/interface.go
package referenceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"rane/database"
	"rane/models"
)

// Repository exposes the read-only topic and practitioner reference data.
type Repository interface {
	GetTopics(ctx context.Context) ([]models.Topic, error)
	GetTopicByID(ctx context.Context, id string) (*models.Topic, error)
	GetPractitioners(ctx context.Context) ([]models.Practitioner, error)
	GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error)
}

type mongoReferenceRepo struct {
	topics        *mongo.Collection
	practitioners *mongo.Collection
}

// NewMongoReferenceRepo constructs a MongoDB-backed reference Repository.
func NewMongoReferenceRepo(dbName string) Repository {
	db := database.MongoClient.Database(dbName)
	return &mongoReferenceRepo{
		topics:        db.Collection("topics"),
		practitioners: db.Collection("practitioners"),
	}
}
