package clientRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"versatil/models"
)

func (r *mongoClientRepo) FindByPhone(ctx context.Context, phone string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&client)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

func (r *mongoClientRepo) UpdateEmail(ctx context.Context, id, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"email": email}})
	if err != nil {
		return fmt.Errorf("failed to update client email: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the clients collection.
func (r *mongoClientRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create client indexes: %w", err)
	}
	return nil
}
