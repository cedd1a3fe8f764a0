package repository

import (
	"context"
	"fmt"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoImportJobRepository implements the ImportJobRepository interface
type MongoImportJobRepository struct {
	collection *mongo.Collection
}

// NewMongoImportJobRepository creates a new MongoDB import job repository
func NewMongoImportJobRepository(db *mongo.Database) repository.ImportJobRepository {
	collection := db.Collection("importJobs")

	ctx := context.Background()

	jobIDIndex := mongo.IndexModel{
		Keys:    bson.M{"jobId": 1},
		Options: options.Index().SetUnique(true),
	}

	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	receivedAtIndex := mongo.IndexModel{
		Keys: bson.M{"receivedAt": -1},
	}

	// Compound index for finding pending jobs efficiently
	pendingIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "receivedAt", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		jobIDIndex,
		statusIndex,
		receivedAtIndex,
		pendingIndex,
	})

	return &MongoImportJobRepository{
		collection: collection,
	}
}

// Save stores a new import job
func (r *MongoImportJobRepository) Save(ctx context.Context, job *entity.ImportJob) error {
	if job.Status == "" {
		job.Status = entity.StatusPending
	}
	if job.ReceivedAt.IsZero() {
		job.ReceivedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, job)
	return err
}

// FindByJobID finds an import job by its job ID
func (r *MongoImportJobRepository) FindByJobID(ctx context.Context, jobID string) (*entity.ImportJob, error) {
	var job entity.ImportJob
	err := r.collection.FindOne(ctx, bson.M{"jobId": jobID}).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindPending finds jobs waiting for processing, oldest first
func (r *MongoImportJobRepository) FindPending(ctx context.Context, limit int) ([]*entity.ImportJob, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"status": ""},
			{"status": entity.StatusPending},
			{"status": bson.M{"$exists": false}},
		},
	}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "receivedAt", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*entity.ImportJob
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// UpdateStatus updates just the status and started time
func (r *MongoImportJobRepository) UpdateStatus(ctx context.Context, jobID string, status string, startedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status": status,
		},
	}

	// Only set startedAt when moving to PROCESSING
	if status == entity.StatusProcessing && !startedAt.IsZero() {
		update["$set"].(bson.M)["startedAt"] = startedAt
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"jobId": jobID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no job found with id: %s", jobID)
	}

	return nil
}

// MarkProcessed records the final outcome of a job
func (r *MongoImportJobRepository) MarkProcessed(ctx context.Context, jobID, status, errorDetail string, summary map[string]interface{}) error {
	update := bson.M{
		"$set": bson.M{
			"processedAt": time.Now(),
			"status":      status,
		},
	}

	if len(summary) > 0 {
		update["$set"].(bson.M)["summary"] = summary
	}

	if errorDetail != "" {
		update["$set"].(bson.M)["errorDetail"] = errorDetail
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"jobId": jobID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to mark as processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no job found with id: %s", jobID)
	}

	return nil
}

// ResetProcessingJobs resets jobs stuck in PROCESSING state back to PENDING
func (r *MongoImportJobRepository) ResetProcessingJobs(ctx context.Context) error {
	// Jobs processing for more than 5 minutes are considered stale
	staleTime := time.Now().Add(-5 * time.Minute)

	filter := bson.M{
		"status": entity.StatusProcessing,
		"$or": []bson.M{
			{"startedAt": bson.M{"$lt": staleTime}},
			{"startedAt": bson.M{"$exists": false}},
		},
	}

	update := bson.M{
		"$set": bson.M{
			"status":      entity.StatusPending,
			"errorDetail": "Reset from stale PROCESSING state",
		},
	}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
