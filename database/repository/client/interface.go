package clientRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"versatil/database"
	"versatil/models"
)

// ClientRepository stores customer records, deduplicated by phone number.
type ClientRepository interface {
	FindByPhone(ctx context.Context, phone string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	UpdateEmail(ctx context.Context, id, email string) error
	EnsureIndexes() error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a ClientRepository over the "clients" collection.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
