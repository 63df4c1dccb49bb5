package packing

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// Engine runs a complete packing pass: resolve, dispatch, expand, pack,
// consolidate, classify. It is a pure computation over its inputs; the only
// I/O happens inside the resolver's override lookup.
type Engine struct {
	resolver *Resolver
	log      zerolog.Logger
}

func NewEngine(resolver *Resolver, log zerolog.Logger) *Engine {
	return &Engine{resolver: resolver, log: log}
}

// Pack configures the pallets for one raw order. The call is total: any
// valid order produces a result, with unknown and oversized conditions
// reported on the result rather than failing the call.
func (e *Engine) Pack(ctx context.Context, lines []model.OrderLine) (*model.PackingResult, error) {
	items, unknown, err := e.resolver.Resolve(ctx, lines)
	if err != nil {
		return nil, err
	}

	if ParcelEligible(items) {
		return parcelResult(items, unknown), nil
	}

	result := &model.PackingResult{
		TotalItems:      len(items),
		HasUnknownItems: unknown > 0,
		OversizedItems:  []model.OversizedItem{},
	}

	regular, oversizedPallets := extractOversized(items, result)
	buckets := Dispatch(regular)

	// DD crates precede oversized pallets precede everything else
	var pallets []*model.Pallet
	pallets = append(pallets, ExpandDoubleDockers(buckets[BucketDoubleDocker])...)
	pallets = append(pallets, oversizedPallets...)

	for _, b := range bucketOrder {
		bucketItems := buckets[b]
		if len(bucketItems) == 0 {
			continue
		}
		packed, err := e.packBucket(b, bucketItems)
		if err != nil {
			return nil, fmt.Errorf("packing bucket %s: %w", b, err)
		}
		pallets = append(pallets, packed...)
	}

	pallets = Consolidate(pallets)

	for i, p := range pallets {
		p.ID = i + 1
		p.Finalize()
		p.FreightClass = FreightClass(p.Density)
		result.Pallets = append(result.Pallets, *p)
		result.TotalWeight += p.Weight
		result.TotalCubicFeet += p.CubicFeet
	}
	result.TotalPallets = len(result.Pallets)
	result.TotalWeight = round1(result.TotalWeight)
	result.TotalCubicFeet = round1(result.TotalCubicFeet)
	result.ShippingMethod = ShippingMode(result.TotalWeight, result.TotalPallets)

	e.log.Info().
		Int("pallets", result.TotalPallets).
		Int("items", result.TotalItems).
		Float64("weight", result.TotalWeight).
		Str("mode", result.ShippingMethod).
		Msg("order packed")
	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// packBucket picks the packing path for one policy bucket.
func (e *Engine) packBucket(b Bucket, items []model.Item) ([]*model.Pallet, error) {
	spec := SpecFor(b, len(items))
	group := items[0].Group

	var (
		pallets []*model.Pallet
		err     error
	)
	switch {
	case b == BucketUndergradOversized:
		pallets = packNestedStacks(spec, items)
	case spec.vertical():
		pallets, err = RunStrategies(e.log, spec, standOnEnd(items))
	default:
		pallets, err = RunStrategies(e.log, spec, items)
	}
	if err != nil {
		return nil, err
	}
	for _, p := range pallets {
		p.Group = group
		if p.PackingNote == "" {
			p.PackingNote = spec.Note
		}
	}
	return pallets, nil
}

// standOnEnd reorients items so their longest extent becomes the height.
// Used for the vertical skatedock skid.
func standOnEnd(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	for i := range out {
		d := out[i].Dims
		ext := []float64{d.LengthIn, d.WidthIn, d.HeightIn}
		sort.Float64s(ext)
		out[i].Dims.LengthIn = ext[1]
		out[i].Dims.WidthIn = ext[0]
		out[i].Dims.HeightIn = ext[2]
	}
	return out
}

// extractOversized pulls out items whose two longest extents exceed the
// largest standard footprint. Each gets its own grown-footprint pallet; the
// item is still placed, never dropped.
func extractOversized(items []model.Item, result *model.PackingResult) (regular []model.Item, pallets []*model.Pallet) {
	for _, it := range items {
		long, short := it.Dims.LongestTwo()
		if long <= maxStandardLength && short <= maxStandardWidth {
			regular = append(regular, it)
			continue
		}
		result.OversizedItems = append(result.OversizedItems, model.OversizedItem{
			SKU:  it.SKU,
			Dims: it.Dims,
			Reason: fmt.Sprintf("footprint %.1fx%.1f exceeds largest standard pallet %.0fx%.0f",
				long, short, maxStandardLength, maxStandardWidth),
		})
		p := &model.Pallet{
			Group:       it.Group,
			Length:      long,
			Width:       short,
			MaxHeight:   it.Dims.HeightIn,
			MaxWeight:   it.Dims.WeightLbs + model.PalletTareLbs,
			Oversized:   true,
			PackingNote: "oversized item, route as special freight",
			Placements: []model.Placement{{
				X: 0, Y: 0, Z: 0,
				L: long, W: short, H: it.Dims.HeightIn,
				SKU:           it.SKU,
				DisplayName:   it.DisplayName,
				WeightLbs:     it.Dims.WeightLbs,
				LineIndex:     it.LineIndex,
				InstanceIndex: it.InstanceIndex,
				Unknown:       it.Unknown,
			}},
		}
		pallets = append(pallets, p)
	}
	return regular, pallets
}

// parcelResult builds the zero-pallet result for orders where every carton
// ships as an individual parcel.
func parcelResult(items []model.Item, unknown int) *model.PackingResult {
	summary := &model.ParcelSummary{Count: len(items)}
	total := 0.0
	for _, it := range items {
		summary.Packages = append(summary.Packages, model.ParcelPackage{
			SKU:       it.SKU,
			Dims:      it.Dims,
			WeightLbs: it.Dims.WeightLbs,
		})
		total += it.Dims.WeightLbs
	}
	return &model.PackingResult{
		Pallets:         []model.Pallet{},
		TotalPallets:    0,
		TotalWeight:     total,
		TotalItems:      len(items),
		ShippingMethod:  model.ShipParcel,
		ParcelPackages:  summary,
		HasUnknownItems: unknown > 0,
		OversizedItems:  []model.OversizedItem{},
	}
}

// Slab rack sections nest into each other: the first section stands at its
// full carton length plus the entry lip, and every section after it adds
// only the nesting increment to the stack's height and length. A stack never
// exceeds ten sections or 36 inches regardless of the pallet ceiling.
const (
	nestedStackStepIn    = 2.5
	nestedStackEntryIn   = 2.5
	nestedStackMaxHeight = 36.0
	nestedStackMaxUnits  = 10
)

// nestedStackLength is the deck length a stack of n nested sections needs.
func nestedStackLength(base float64, n int) float64 {
	return base + nestedStackEntryIn + float64(n-1)*nestedStackStepIn
}

// packNestedStacks packs nesting rack sections as vertical stacks, one stack
// footprint per placement column. Stacks are capped at ten sections under 36
// inches and by the pallet weight ceiling; overflow splits onto further
// pallets with the stack dims recomputed from each pallet's section count.
func packNestedStacks(spec PalletSpec, items []model.Item) []*model.Pallet {
	// stable grouping by SKU so stacks hold identical sections
	bySKU := make(map[string][]model.Item)
	var skuOrder []string
	for _, it := range items {
		if _, ok := bySKU[it.SKU]; !ok {
			skuOrder = append(skuOrder, it.SKU)
		}
		bySKU[it.SKU] = append(bySKU[it.SKU], it)
	}

	var pallets []*model.Pallet
	var current *model.Pallet
	var lp *LayerPacker
	weight := 0.0
	units := 0

	newPallet := func() {
		current = &model.Pallet{
			Length:    spec.Length,
			Width:     spec.Width,
			MaxHeight: spec.MaxHeight,
			MaxWeight: spec.MaxWeight,
			Footprint: [2]float64{spec.Length, spec.Width},
		}
		lp = NewLayerPacker(spec.Length, spec.Width)
		weight = 0
		units = 0
		pallets = append(pallets, current)
	}
	newPallet()

	ceiling := nestedStackMaxHeight
	if spec.MaxHeight < ceiling {
		ceiling = spec.MaxHeight
	}

	for _, sku := range skuOrder {
		pending := bySKU[sku]
		for len(pending) > 0 {
			if units >= nestedStackMaxUnits && len(current.Placements) > 0 {
				newPallet()
			}

			full := pending[0].Dims.HeightIn
			maxByHeight := int((ceiling-full)/nestedStackStepIn) + 1
			if maxByHeight < 1 {
				maxByHeight = 1
			}

			n := len(pending)
			if n > maxByHeight {
				n = maxByHeight
			}
			if room := nestedStackMaxUnits - units; n > room {
				n = room
			}
			for n > 1 && weight+stackWeight(pending[:n]) > spec.MaxWeight {
				n--
			}

			d := pending[0].Dims
			stackLen := nestedStackLength(d.LengthIn, n)
			fit, err := lp.FindBestFit(stackLen, d.WidthIn, false)
			needNew := err != nil || weight+stackWeight(pending[:n]) > spec.MaxWeight
			if needNew && len(current.Placements) > 0 {
				newPallet()
				continue
			}

			// on a fresh pallet the stack goes down regardless; a stack
			// longer than the deck sits at the origin and the deck grows
			// under it
			x, z, l, w := 0.0, 0.0, stackLen, d.WidthIn
			if err == nil {
				lp.Place(fit)
				x, z, l, w = fit.X, fit.Z, fit.L, fit.W
			}
			if x+l > current.Length {
				current.Length = x + l
				current.Footprint[0] = current.Length
			}
			if z+w > current.Width {
				current.Width = z + w
				current.Footprint[1] = current.Width
			}

			stack := pending[:n]
			pending = pending[n:]
			units += n
			for i, it := range stack {
				h := nestedStackStepIn
				if i == len(stack)-1 {
					h = it.Dims.HeightIn
				}
				current.Placements = append(current.Placements, model.Placement{
					X: x, Y: float64(i) * nestedStackStepIn, Z: z,
					L: l, W: w, H: h,
					SKU:           it.SKU,
					DisplayName:   it.DisplayName,
					WeightLbs:     it.Dims.WeightLbs,
					LineIndex:     it.LineIndex,
					InstanceIndex: it.InstanceIndex,
					Unknown:       it.Unknown,
				})
				weight += it.Dims.WeightLbs
			}
		}
	}

	// drop a trailing empty pallet left by the last rollover
	if len(pallets) > 0 && len(pallets[len(pallets)-1].Placements) == 0 {
		pallets = pallets[:len(pallets)-1]
	}
	return pallets
}

func stackWeight(items []model.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Dims.WeightLbs
	}
	return total
}
