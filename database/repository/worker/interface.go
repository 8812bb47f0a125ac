package workerRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"versatil/database"
	"versatil/models"
)

// WorkerRepository is the schedule store: stylist documents keyed by ID,
// including each stylist's weekly working hours.
type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	GetByName(ctx context.Context, name string) (*models.Worker, error)
	ListActive(ctx context.Context) ([]models.Worker, error)
	EnsureIndexes() error
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a WorkerRepository over the "workers" collection.
func NewMongoWorkerRepo() WorkerRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoWorkerRepo{
		coll: db.Collection("workers"),
	}
}
