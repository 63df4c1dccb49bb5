// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// OverridesRepositoryInterface defines the interface for dimension override operations.
type OverridesRepositoryInterface interface {
	Get(ctx context.Context, sku string) (*DimensionOverride, error)
	Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*DimensionOverride, error)
	Clear(ctx context.Context, sku string) error
	List(ctx context.Context) ([]DimensionOverride, error)
}

// ValidationsRepositoryInterface defines the interface for validation record operations.
type ValidationsRepositoryInterface interface {
	Write(ctx context.Context, record *model.ValidationRecord) error
	Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error)
	List(ctx context.Context, limit int) ([]model.ValidationRecord, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
