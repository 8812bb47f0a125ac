package workerRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"versatil/models"
)

func (r *mongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.Worker
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker)
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *mongoWorkerRepo) GetByName(ctx context.Context, name string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Appointments join on display name, so the lookup tolerates case and
	// surrounding whitespace the same way the availability engine does.
	filter := bson.M{"name": primitive.Regex{
		Pattern: "^\\s*" + regexp.QuoteMeta(strings.TrimSpace(name)) + "\\s*$",
		Options: "i",
	}}
	var worker models.Worker
	err := r.coll.FindOne(ctx, filter).Decode(&worker)
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *mongoWorkerRepo) ListActive(ctx context.Context) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("error decoding workers: %w", err)
	}
	return workers, nil
}

// EnsureIndexes creates the necessary indexes on the workers collection.
func (r *mongoWorkerRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create worker indexes: %w", err)
	}
	return nil
}
