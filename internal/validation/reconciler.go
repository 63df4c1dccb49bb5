package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/packing"
)

var (
	// ErrOrderNotFound means the upstream order system has no order for the
	// given reference.
	ErrOrderNotFound = errors.New("order not found")

	// ErrValidationExists means a record for the reference order was written
	// before; validations are write-once.
	ErrValidationExists = errors.New("validation already recorded for order")

	// ErrOrderSystem means the upstream order system could not be reached or
	// answered with an unexpected status.
	ErrOrderSystem = errors.New("order system unavailable")
)

// OrderFetcher returns the raw line items for a reference order id.
// Implementations wrap the upstream order system and own their timeouts.
type OrderFetcher interface {
	FetchOrder(ctx context.Context, referenceID string) ([]model.OrderLine, error)
}

// Store persists validation records, write-once by reference order id.
type Store interface {
	WriteValidation(ctx context.Context, record *model.ValidationRecord) error
}

// Notifier is a fire-and-forget side channel for completed validations.
// Failures are logged, never propagated.
type Notifier interface {
	Notify(ctx context.Context, record *model.ValidationRecord) error
}

// Request carries the dock-reported actuals for one shipment.
type Request struct {
	ReferenceOrderID string               `json:"reference_order_id"`
	ActualPallets    []model.ActualPallet `json:"actual_pallets"`
	ValidatedBy      string               `json:"validated_by"`
	Notes            string               `json:"notes,omitempty"`
}

// Reconciler compares a shipment's rule-of-thumb prediction against the
// actual pallets reported from the dock and persists the outcome.
type Reconciler struct {
	fetcher   OrderFetcher
	resolver  *packing.Resolver
	store     Store
	notifiers []Notifier
	log       zerolog.Logger
}

func NewReconciler(fetcher OrderFetcher, resolver *packing.Resolver, store Store, notifiers []Notifier, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		fetcher:   fetcher,
		resolver:  resolver,
		store:     store,
		notifiers: notifiers,
		log:       log,
	}
}

// Reconcile fetches the order, predicts, computes the variance against the
// actuals, and writes the record. The store write is awaited and its error
// propagates; notifications are dispatched in the background.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*model.ValidationRecord, error) {
	lines, err := r.fetcher.FetchOrder(ctx, req.ReferenceOrderID)
	if err != nil {
		return nil, fmt.Errorf("fetching order %s: %w", req.ReferenceOrderID, err)
	}

	items, _, err := r.resolver.Resolve(ctx, lines)
	if err != nil {
		return nil, err
	}

	breakdown, predictedPallets, predictedWeight := Predict(items)

	actualWeight := 0.0
	for _, p := range req.ActualPallets {
		actualWeight += p.WeightLbs
	}

	delta := predictedPallets - len(req.ActualPallets)
	record := &model.ValidationRecord{
		ReferenceOrderID:   req.ReferenceOrderID,
		PredictedPallets:   predictedPallets,
		PredictedWeightLbs: predictedWeight,
		PredictedBreakdown: breakdown,
		ActualPallets:      len(req.ActualPallets),
		ActualWeightLbs:    actualWeight,
		ActualPalletDims:   req.ActualPallets,
		ValidatedBy:        req.ValidatedBy,
		Notes:              req.Notes,
		Variance: model.Variance{
			PalletDelta: delta,
			WeightDelta: predictedWeight - actualWeight,
			WithinOne:   abs(delta) <= 1,
			Exact:       delta == 0,
		},
		Timestamp: time.Now().UTC(),
	}

	if err := r.store.WriteValidation(ctx, record); err != nil {
		return nil, fmt.Errorf("writing validation record: %w", err)
	}

	r.notify(record)

	r.log.Info().
		Str("order", record.ReferenceOrderID).
		Int("predicted", record.PredictedPallets).
		Int("actual", record.ActualPallets).
		Bool("exact", record.Variance.Exact).
		Msg("validation recorded")
	return record, nil
}

// notify fans out to the side channels without blocking the caller or tying
// their lifetime to the request context.
func (r *Reconciler) notify(record *model.ValidationRecord) {
	for _, n := range r.notifiers {
		go func(n Notifier) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := n.Notify(ctx, record); err != nil {
				r.log.Warn().Err(err).Str("order", record.ReferenceOrderID).Msg("validation notifier failed")
			}
		}(n)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
