package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/metrics"
	"github.com/velofab/pallet-service/internal/packing"
)

// PackingService runs pallet configurations for raw orders.
type PackingService interface {
	Pack(ctx context.Context, lines []model.OrderLine) (*model.PackingResult, error)
}

// Option configures a PackingServiceImpl.
type Option func(*PackingServiceImpl)

// PackingServiceImpl implements PackingService on top of the packing engine.
type PackingServiceImpl struct {
	catalog   *catalog.Catalog
	overrides packing.OverrideSource
	log       zerolog.Logger
	engine    *packing.Engine
}

// NewPackingService creates a new packing service with the given options.
func NewPackingService(opts ...Option) *PackingServiceImpl {
	s := &PackingServiceImpl{
		catalog: catalog.Default(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	resolver := packing.NewResolver(s.catalog, s.overrides, s.log)
	s.engine = packing.NewEngine(resolver, s.log)
	return s
}

// WithCatalog sets a custom product catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *PackingServiceImpl) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithOverrideSource wires the dimension override store into resolution.
func WithOverrideSource(src packing.OverrideSource) Option {
	return func(s *PackingServiceImpl) {
		s.overrides = src
	}
}

// WithLogger sets the service logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *PackingServiceImpl) {
		s.log = log
	}
}

// Pack configures pallets for the order and records timing metrics.
func (s *PackingServiceImpl) Pack(ctx context.Context, lines []model.OrderLine) (*model.PackingResult, error) {
	start := time.Now()
	result, err := s.engine.Pack(ctx, lines)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordPackError()
		return nil, err
	}

	metrics.RecordPack(duration, result.TotalPallets, result.TotalItems, result.ShippingMethod)
	if result.HasUnknownItems {
		metrics.RecordUnknownItems()
	}
	return result, nil
}
