// Package repository provides data access for dimension overrides.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// OverrideTTL is how long a dimension override stays valid after it is
// written. Expired overrides are pruned on read and by the collection's TTL
// index.
const OverrideTTL = 30 * 24 * time.Hour

// DimensionOverride is a user-supplied carton measurement that replaces the
// catalog dimensions for one SKU.
type DimensionOverride struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU       string             `bson:"sku" json:"sku"`
	Dims      model.CartonDims   `bson:"dims" json:"dims"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// OverridesRepository provides methods for dimension override operations.
type OverridesRepository struct {
	collection *mongo.Collection
}

// NewOverridesRepository creates a new overrides repository.
func NewOverridesRepository(db *MongoDB) *OverridesRepository {
	return &OverridesRepository{
		collection: db.Overrides,
	}
}

// Get returns the unexpired override for a SKU, or nil when none exists.
func (r *OverridesRepository) Get(ctx context.Context, sku string) (*DimensionOverride, error) {
	var override DimensionOverride
	err := r.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&override)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No override found
	}
	if err != nil {
		return nil, err
	}
	if !override.ExpiresAt.After(time.Now()) {
		// lazily prune so behavior doesn't depend on the TTL monitor
		_, _ = r.collection.DeleteOne(ctx, bson.M{"_id": override.ID})
		return nil, nil
	}
	return &override, nil
}

// Put writes or replaces the override for a SKU, restarting its TTL.
func (r *OverridesRepository) Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*DimensionOverride, error) {
	now := time.Now()
	override := DimensionOverride{
		SKU:       sku,
		Dims:      dims,
		CreatedBy: createdBy,
		CreatedAt: now,
		ExpiresAt: now.Add(OverrideTTL),
	}

	var saved DimensionOverride
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"sku": sku},
		bson.M{"$set": override},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Clear removes the override for a SKU. Removing a missing SKU is not an
// error.
func (r *OverridesRepository) Clear(ctx context.Context, sku string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"sku": sku})
	return err
}

// List returns all unexpired overrides, pruning expired ones as it goes.
func (r *OverridesRepository) List(ctx context.Context) ([]DimensionOverride, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"sku": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var all []DimensionOverride
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}

	now := time.Now()
	live := all[:0]
	var expired []primitive.ObjectID
	for _, o := range all {
		if o.ExpiresAt.After(now) {
			live = append(live, o)
		} else {
			expired = append(expired, o.ID)
		}
	}
	if len(expired) > 0 {
		_, _ = r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": expired}})
	}

	return live, nil
}
