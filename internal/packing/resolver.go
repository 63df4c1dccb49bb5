package packing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
)

// OverrideSource supplies caller-managed dimension overrides keyed by
// normalized SKU. Implementations may hit storage, so the context applies.
type OverrideSource interface {
	Override(ctx context.Context, sku string) (*model.CartonDims, bool, error)
}

// Resolver turns raw order lines into packable items with resolved
// dimensions, weights, and packaging groups.
type Resolver struct {
	catalog   *catalog.Catalog
	overrides OverrideSource
	log       zerolog.Logger
}

// NewResolver builds a resolver. overrides may be nil when the caller has no
// override store.
func NewResolver(c *catalog.Catalog, overrides OverrideSource, log zerolog.Logger) *Resolver {
	return &Resolver{catalog: c, overrides: overrides, log: log}
}

// Resolve expands order lines into items, one per physical unit. Service
// lines and bundled hardware kits are dropped. Unknown SKUs resolve to
// default dimensions and carry the unknown flag unless an override exists.
// Returns the items and the count of unknown lines.
func (r *Resolver) Resolve(ctx context.Context, lines []model.OrderLine) ([]model.Item, int, error) {
	var items []model.Item
	unknown := 0

	for li, line := range lines {
		sku := catalog.NormalizeSKU(line.SKU)
		if sku == "" || line.Qty <= 0 {
			continue
		}
		if catalog.IsServiceLine(line.Description) || catalog.IsServiceLine(sku) || catalog.IsHardwareKit(sku) {
			r.log.Debug().Str("sku", line.SKU).Msg("dropping non-product line")
			continue
		}

		item := r.resolveLine(ctx, sku, line)
		if item.Unknown {
			unknown++
			r.log.Warn().Str("sku", line.SKU).Msg("unknown sku, using default carton")
		}

		for i := 0; i < line.Qty; i++ {
			inst := item
			inst.LineIndex = li
			inst.InstanceIndex = i
			items = append(items, inst)
		}
	}

	if len(items) == 0 {
		return nil, unknown, ErrOrderEmpty
	}
	return items, unknown, nil
}

func (r *Resolver) resolveLine(ctx context.Context, sku string, line model.OrderLine) model.Item {
	item := model.Item{
		SKU:         sku,
		DisplayName: line.Description,
	}

	if p, ok := r.catalog.Lookup(sku); ok {
		item.SKU = p.SKU
		item.Group = p.Group
		if item.DisplayName == "" {
			item.DisplayName = p.DisplayName
		}
		if p.Packaged != nil {
			item.Dims = *p.Packaged
		} else {
			item.Dims = catalog.DefaultUnknownDims
			item.Unknown = true
		}
	} else {
		group, err := catalog.Classify(sku, line.Description)
		if err != nil {
			group = model.GroupOther
		}
		item.Group = group
		item.Dims = catalog.DefaultUnknownDims
		item.Unknown = true
		if item.DisplayName == "" {
			item.DisplayName = sku
		}
	}

	if r.overrides != nil {
		dims, ok, err := r.overrides.Override(ctx, sku)
		if err != nil {
			r.log.Warn().Err(err).Str("sku", sku).Msg("override lookup failed, continuing without")
		} else if ok && dims != nil && dims.Valid() {
			item.Dims = *dims
			item.Unknown = false
			item.HasOverride = true
		}
	}

	return item
}
