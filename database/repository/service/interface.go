package serviceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"versatil/database"
	"versatil/models"
)

// ServiceRepository is the service catalogue store.
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetByName(ctx context.Context, name string) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a ServiceRepository over the "services" collection.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
