// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/velofab/pallet-service/internal/circuitbreaker"
	"github.com/velofab/pallet-service/internal/domain/model"
)

// OverridesRepositoryWithCircuitBreaker wraps OverridesRepository with circuit breaker protection.
type OverridesRepositoryWithCircuitBreaker struct {
	repo           *OverridesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOverridesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOverridesRepositoryWithCircuitBreaker(repo *OverridesRepository, cb *circuitbreaker.CircuitBreaker) *OverridesRepositoryWithCircuitBreaker {
	return &OverridesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns the override for a SKU with circuit breaker protection.
// If circuit is open, returns nil so packing proceeds with catalog dimensions.
func (r *OverridesRepositoryWithCircuitBreaker) Get(ctx context.Context, sku string) (*DimensionOverride, error) {
	var result *DimensionOverride
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, sku)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - pack with catalog dimensions instead
		return nil, nil
	}
	return result, err
}

// Put writes an override with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*DimensionOverride, error) {
	var result *DimensionOverride
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Put(ctx, sku, dims, createdBy)
		return cbErr
	})
	return result, err
}

// Clear removes an override with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) Clear(ctx context.Context, sku string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Clear(ctx, sku)
	})
}

// List returns all overrides with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) List(ctx context.Context) ([]DimensionOverride, error) {
	var result []DimensionOverride
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OverridesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ValidationsRepositoryWithCircuitBreaker wraps ValidationsRepository with circuit breaker protection.
type ValidationsRepositoryWithCircuitBreaker struct {
	repo           *ValidationsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewValidationsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewValidationsRepositoryWithCircuitBreaker(repo *ValidationsRepository, cb *circuitbreaker.CircuitBreaker) *ValidationsRepositoryWithCircuitBreaker {
	return &ValidationsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Write inserts a validation record with circuit breaker protection.
// Validation writes must not be silently dropped, so open-circuit errors
// propagate.
func (r *ValidationsRepositoryWithCircuitBreaker) Write(ctx context.Context, record *model.ValidationRecord) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Write(ctx, record)
	})
}

// Get returns a validation record with circuit breaker protection.
func (r *ValidationsRepositoryWithCircuitBreaker) Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error) {
	var result *model.ValidationRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, referenceOrderID)
		return cbErr
	})
	return result, err
}

// List returns validation records with circuit breaker protection.
func (r *ValidationsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.ValidationRecord, error) {
	var result []model.ValidationRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ValidationsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
