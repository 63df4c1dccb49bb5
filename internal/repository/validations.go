// Package repository provides data access for validation records.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// ErrValidationExists is returned when a record already exists for the
// reference order id; validations are write-once.
var ErrValidationExists = errors.New("validation already exists for reference order")

// ValidationsRepository provides methods for validation record operations.
type ValidationsRepository struct {
	collection *mongo.Collection
}

// NewValidationsRepository creates a new validations repository.
func NewValidationsRepository(db *MongoDB) *ValidationsRepository {
	return &ValidationsRepository{
		collection: db.Validations,
	}
}

// Write inserts a validation record. The unique index on
// reference_order_id enforces the write-once rule.
func (r *ValidationsRepository) Write(ctx context.Context, record *model.ValidationRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return ErrValidationExists
	}
	return err
}

// Get returns the record for a reference order id, or nil when none exists.
func (r *ValidationsRepository) Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error) {
	var record model.ValidationRecord
	err := r.collection.FindOne(ctx, bson.M{"reference_order_id": referenceOrderID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No record found
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the most recent validation records.
func (r *ValidationsRepository) List(ctx context.Context, limit int) ([]model.ValidationRecord, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []model.ValidationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
