package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/metrics"
	"github.com/velofab/pallet-service/internal/packing"
	"github.com/velofab/pallet-service/internal/repository"
	"github.com/velofab/pallet-service/internal/validation"
)

// ValidationService reconciles predicted shipments against dock actuals and
// reads back recorded validations.
type ValidationService interface {
	Validate(ctx context.Context, req validation.Request) (*model.ValidationRecord, error)
	Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error)
	List(ctx context.Context, limit int) ([]model.ValidationRecord, error)
}

// ValidationServiceImpl implements ValidationService.
type ValidationServiceImpl struct {
	reconciler      *validation.Reconciler
	validationsRepo repository.ValidationsRepositoryInterface
	log             zerolog.Logger
}

// validationStore adapts the repository to the reconciler's store seam,
// translating the duplicate-key error to the domain sentinel.
type validationStore struct {
	repo repository.ValidationsRepositoryInterface
}

func (s validationStore) WriteValidation(ctx context.Context, record *model.ValidationRecord) error {
	err := s.repo.Write(ctx, record)
	if errors.Is(err, repository.ErrValidationExists) {
		return validation.ErrValidationExists
	}
	return err
}

// NewValidationService creates a new validation service.
func NewValidationService(
	fetcher validation.OrderFetcher,
	validationsRepo repository.ValidationsRepositoryInterface,
	overrides packing.OverrideSource,
	notifiers []validation.Notifier,
	log zerolog.Logger,
) ValidationService {
	resolver := packing.NewResolver(catalog.Default(), overrides, log)
	return &ValidationServiceImpl{
		reconciler:      validation.NewReconciler(fetcher, resolver, validationStore{repo: validationsRepo}, notifiers, log),
		validationsRepo: validationsRepo,
		log:             log,
	}
}

func (s *ValidationServiceImpl) Validate(ctx context.Context, req validation.Request) (*model.ValidationRecord, error) {
	if s.validationsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	record, err := s.reconciler.Reconcile(ctx, req)
	if err != nil {
		return nil, err
	}
	metrics.RecordValidation(record.Variance.PalletDelta, record.Variance.Exact, record.Variance.WithinOne)
	return record, nil
}

func (s *ValidationServiceImpl) Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error) {
	if s.validationsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.validationsRepo.Get(ctx, referenceOrderID)
}

func (s *ValidationServiceImpl) List(ctx context.Context, limit int) ([]model.ValidationRecord, error) {
	if s.validationsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.validationsRepo.List(ctx, limit)
}
