package service

import (
	"context"
	"errors"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrInvalidDims is returned when an override carries non-positive dimensions
// or weight.
var ErrInvalidDims = errors.New("override dimensions must be positive")

// OverridesService provides dimension override operations. SKUs are
// normalized on the way in so callers and the packing resolver agree on keys.
type OverridesService interface {
	Get(ctx context.Context, sku string) (*repository.DimensionOverride, error)
	Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*repository.DimensionOverride, error)
	Clear(ctx context.Context, sku string) error
	List(ctx context.Context) ([]repository.DimensionOverride, error)

	// Override implements packing.OverrideSource for the resolver.
	Override(ctx context.Context, sku string) (*model.CartonDims, bool, error)
}

// OverridesServiceImpl implements OverridesService.
type OverridesServiceImpl struct {
	overridesRepo repository.OverridesRepositoryInterface
}

// NewOverridesService creates a new overrides service.
func NewOverridesService(overridesRepo repository.OverridesRepositoryInterface) OverridesService {
	return &OverridesServiceImpl{
		overridesRepo: overridesRepo,
	}
}

func (s *OverridesServiceImpl) Get(ctx context.Context, sku string) (*repository.DimensionOverride, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.overridesRepo.Get(ctx, catalog.NormalizeSKU(sku))
}

func (s *OverridesServiceImpl) Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*repository.DimensionOverride, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !dims.Valid() {
		return nil, ErrInvalidDims
	}
	return s.overridesRepo.Put(ctx, catalog.NormalizeSKU(sku), dims, createdBy)
}

func (s *OverridesServiceImpl) Clear(ctx context.Context, sku string) error {
	if s.overridesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.overridesRepo.Clear(ctx, catalog.NormalizeSKU(sku))
}

func (s *OverridesServiceImpl) List(ctx context.Context) ([]repository.DimensionOverride, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.overridesRepo.List(ctx)
}

// Override adapts the repository to the packing resolver. A missing
// repository degrades to "no override" instead of failing the packing call.
func (s *OverridesServiceImpl) Override(ctx context.Context, sku string) (*model.CartonDims, bool, error) {
	if s.overridesRepo == nil {
		return nil, false, nil
	}
	o, err := s.overridesRepo.Get(ctx, catalog.NormalizeSKU(sku))
	if err != nil {
		return nil, false, err
	}
	if o == nil {
		return nil, false, nil
	}
	dims := o.Dims
	return &dims, true, nil
}
