package packing

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
)

func newTestEngine(overrides OverrideSource) *Engine {
	return NewEngine(NewResolver(catalog.Default(), overrides, zerolog.Nop()), zerolog.Nop())
}

func TestEngine_Pack(t *testing.T) {
	ctx := context.Background()

	t.Run("empty order", func(t *testing.T) {
		_, err := newTestEngine(nil).Pack(ctx, nil)
		assert.ErrorIs(t, err, ErrOrderEmpty)
	})

	t.Run("parcel short circuit", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "SIK60", Qty: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, model.ShipParcel, result.ShippingMethod)
		assert.Zero(t, result.TotalPallets)
		assert.Empty(t, result.Pallets)
		require.NotNil(t, result.ParcelPackages)
		assert.Equal(t, 3, result.ParcelPackages.Count)
		assert.InDelta(t, 30.0, result.TotalWeight, 1e-9)
	})

	t.Run("small rack order packs one pallet", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "VR2", Qty: 4},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, result.TotalItems)
		require.GreaterOrEqual(t, result.TotalPallets, 1)
		assert.Equal(t, model.ShipLTL, result.ShippingMethod)
		assert.False(t, result.HasUnknownItems)
		assert.Empty(t, result.OversizedItems)

		placed := 0
		for _, p := range result.Pallets {
			placed += len(p.Placements)
			assert.Positive(t, p.Weight)
			assert.Positive(t, p.CubicFeet)
			assert.Positive(t, p.FreightClass)
		}
		assert.Equal(t, 4, placed, "every unit placed exactly once")
	})

	t.Run("pallet ids are sequential", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "VR2", Qty: 20},
			{SKU: "MBV-1", Qty: 4},
		})
		require.NoError(t, err)
		for i, p := range result.Pallets {
			assert.Equal(t, i+1, p.ID)
		}
	})

	t.Run("oversized item gets its own pallet", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "UG-DS10", Qty: 1},
		})
		require.NoError(t, err)
		require.Len(t, result.OversizedItems, 1)
		assert.Equal(t, "UG-DS10", result.OversizedItems[0].SKU)
		assert.Contains(t, result.OversizedItems[0].Reason, "exceeds largest standard pallet")

		require.Equal(t, 1, result.TotalPallets)
		p := result.Pallets[0]
		assert.True(t, p.Oversized)
		assert.Equal(t, 160.0, p.Length)
		assert.Equal(t, 48.0, p.Width)
	})

	t.Run("oversized mixes with regular pallets", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "UG-DS10", Qty: 1},
			{SKU: "VR2", Qty: 2},
		})
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.TotalPallets, 2)

		oversized, regular := 0, 0
		for _, p := range result.Pallets {
			if p.Oversized {
				oversized++
			} else {
				regular++
			}
		}
		assert.Equal(t, 1, oversized)
		assert.GreaterOrEqual(t, regular, 1)
	})

	t.Run("double docker order emits crates", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "DD-4", Qty: 10},
		})
		require.NoError(t, err)

		tags := map[string]int{}
		for _, p := range result.Pallets {
			tags[p.SourceTag]++
		}
		assert.Equal(t, 1, tags[TagSlideTrack])
		assert.Equal(t, 1, tags[TagManifold])
		assert.Equal(t, 1, tags[TagLegs])
		assert.Equal(t, 3, result.TotalPallets)
	})

	t.Run("small double docker order combines", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "DD-4", Qty: 1},
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.TotalPallets)
		assert.Equal(t, TagCombined, result.Pallets[0].SourceTag)
	})

	t.Run("unknown sku flagged but packed", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "MYSTERY-99", Qty: 200},
		})
		require.NoError(t, err)
		assert.True(t, result.HasUnknownItems)
		assert.GreaterOrEqual(t, result.TotalPallets, 1)

		placed := 0
		for _, p := range result.Pallets {
			placed += len(p.Placements)
		}
		assert.Equal(t, 200, placed)
	})

	t.Run("service only order is empty", func(t *testing.T) {
		_, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "FRT-1", Description: "Freight charge", Qty: 1},
		})
		assert.ErrorIs(t, err, ErrOrderEmpty)
	})

	t.Run("override changes the packed carton", func(t *testing.T) {
		src := &stubOverrides{dims: map[string]model.CartonDims{
			"vr2": {LengthIn: 40, WidthIn: 20, HeightIn: 10, WeightLbs: 28},
		}}
		result, err := newTestEngine(src).Pack(ctx, []model.OrderLine{
			{SKU: "VR2", Qty: 1},
		})
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.TotalPallets, 1)
		require.NotEmpty(t, result.Pallets[0].Placements)
		p := result.Pallets[0].Placements[0]
		assert.Equal(t, 10.0, p.H)
	})

	t.Run("deterministic", func(t *testing.T) {
		lines := []model.OrderLine{
			{SKU: "VR2", Qty: 10},
			{SKU: "MBV-1", Qty: 3},
			{SKU: "SKD-1", Qty: 4},
		}
		first, err := newTestEngine(nil).Pack(ctx, lines)
		require.NoError(t, err)
		second, err := newTestEngine(nil).Pack(ctx, lines)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("totals are aggregated", func(t *testing.T) {
		result, err := newTestEngine(nil).Pack(ctx, []model.OrderLine{
			{SKU: "VR2", Qty: 8},
		})
		require.NoError(t, err)

		weight, cubic := 0.0, 0.0
		for _, p := range result.Pallets {
			weight += p.Weight
			cubic += p.CubicFeet
		}
		assert.InDelta(t, weight, result.TotalWeight, 0.11)
		assert.InDelta(t, cubic, result.TotalCubicFeet, 0.11)
	})
}

func TestStandOnEnd(t *testing.T) {
	items := standOnEnd([]model.Item{
		{Dims: model.CartonDims{LengthIn: 79, WidthIn: 30.5, HeightIn: 9, WeightLbs: 115}},
	})
	require.Len(t, items, 1)
	d := items[0].Dims
	assert.Equal(t, 79.0, d.HeightIn, "longest extent becomes the height")
	assert.Equal(t, 30.5, d.LengthIn)
	assert.Equal(t, 9.0, d.WidthIn)
	assert.Equal(t, 115.0, d.WeightLbs)
}

func TestEngine_Pack_SkatedockVertical(t *testing.T) {
	// 7-9 sections stand on end on the square 44x44 skid.
	result, err := newTestEngine(nil).Pack(context.Background(), []model.OrderLine{
		{SKU: "SKD-1", Qty: 8},
	})
	require.NoError(t, err)

	placed := 0
	for _, p := range result.Pallets {
		placed += len(p.Placements)
		assert.Equal(t, [2]float64{44, 44}, p.Footprint)
	}
	assert.Equal(t, 8, placed)
}

func TestPackNestedStacks(t *testing.T) {
	spec := SpecFor(BucketUndergradOversized, 0)

	t.Run("sections nest into one stack", func(t *testing.T) {
		items := testItems("UG-SS4", 5, 76, 48, 12, 104)
		for i := range items {
			items[i].Group = model.GroupUndergradSS4
		}
		pallets := packNestedStacks(spec, items)
		require.Len(t, pallets, 1)
		require.Len(t, pallets[0].Placements, 5)

		// four nested sections then the full-height top section, all on the
		// grown stack footprint: 76 + 2.5 entry + 4x2.5 nesting = 88.5
		for i, p := range pallets[0].Placements {
			assert.Equal(t, float64(i)*nestedStackStepIn, p.Y)
			assert.InDelta(t, 88.5, p.L, 1e-9)
			if i < 4 {
				assert.Equal(t, nestedStackStepIn, p.H)
			} else {
				assert.Equal(t, 12.0, p.H)
			}
		}
		assert.InDelta(t, 88.5, pallets[0].Length, 1e-9, "deck grows under a stack longer than the spec footprint")
	})

	t.Run("ten sections cap a pallet", func(t *testing.T) {
		// 13 sections split 10+3; each pallet's stack recomputes its own
		// footprint length from its section count.
		items := testItems("UG-SS3", 13, 58, 48, 12, 88)
		for i := range items {
			items[i].Group = model.GroupUndergradSS3
		}
		pallets := packNestedStacks(spec, items)

		require.Len(t, pallets, 2)
		assert.Len(t, pallets[0].Placements, 10)
		assert.Len(t, pallets[1].Placements, 3)
		assert.LessOrEqual(t, pallets[0].StackHeightIn(), nestedStackMaxHeight+overlapTol)
		assert.LessOrEqual(t, pallets[1].StackHeightIn(), nestedStackMaxHeight+overlapTol)
		assert.InDelta(t, 83.0, pallets[0].Placements[0].L, 1e-9)
		assert.InDelta(t, 65.5, pallets[1].Placements[0].L, 1e-9)
	})

	t.Run("stacks stay under the 36 inch nesting ceiling", func(t *testing.T) {
		items := testItems("UG-SS4", 20, 76, 48, 12, 50)
		for i := range items {
			items[i].Group = model.GroupUndergradSS4
		}
		pallets := packNestedStacks(spec, items)

		placed := 0
		for _, p := range pallets {
			placed += len(p.Placements)
			assert.LessOrEqual(t, len(p.Placements), nestedStackMaxUnits)
			for _, pl := range p.Placements {
				assert.LessOrEqual(t, pl.Y+pl.H, nestedStackMaxHeight+overlapTol)
			}
		}
		assert.Equal(t, 20, placed)
		assert.Len(t, pallets, 2)
	})

	t.Run("weight ceiling rolls over", func(t *testing.T) {
		// nine sections at 250 lbs would top 1800; the stack is cut to seven
		// and the rest rolls to a second pallet.
		items := testItems("UG-HEAVY", 9, 80, 48, 13, 250)
		for i := range items {
			items[i].Group = model.GroupUndergradDS10
		}
		pallets := packNestedStacks(spec, items)

		placed := 0
		for _, p := range pallets {
			placed += len(p.Placements)
			assert.LessOrEqual(t, p.ItemWeightLbs(), spec.MaxWeight+overlapTol)
		}
		assert.Equal(t, 9, placed)
		assert.GreaterOrEqual(t, len(pallets), 2)
	})
}

func TestEngine_Pack_PlacementGeometry(t *testing.T) {
	// A mixed order spanning several buckets. Every placement on every
	// pallet must stay inside the deck, clear of its neighbors, under the
	// ceilings, and resting on the deck or on enough of the load below.
	result, err := newTestEngine(nil).Pack(context.Background(), []model.OrderLine{
		{SKU: "VR2", Qty: 40},
		{SKU: "VR4", Qty: 10},
		{SKU: "MBV-1", Qty: 12},
		{SKU: "MBVISI-1", Qty: 8},
		{SKU: "HR-5", Qty: 20},
		{SKU: "CS-8", Qty: 10},
		{SKU: "SKD-1", Qty: 4},
		{SKU: "UG-SS3", Qty: 13},
	})
	require.NoError(t, err)

	placed := 0
	for pi := range result.Pallets {
		p := &result.Pallets[pi]
		placed += len(p.Placements)
		assert.LessOrEqual(t, p.ItemWeightLbs(), p.MaxWeight+overlapTol, "pallet %d over weight", p.ID)

		for i := range p.Placements {
			a := &p.Placements[i]
			assert.GreaterOrEqual(t, a.X, -overlapTol, "pallet %d placement %d", p.ID, i)
			assert.GreaterOrEqual(t, a.Z, -overlapTol, "pallet %d placement %d", p.ID, i)
			assert.GreaterOrEqual(t, a.Y, -overlapTol, "pallet %d placement %d", p.ID, i)
			assert.LessOrEqual(t, a.X+a.L, p.Length+overlapTol, "pallet %d placement %d off the deck", p.ID, i)
			assert.LessOrEqual(t, a.Z+a.W, p.Width+overlapTol, "pallet %d placement %d off the deck", p.ID, i)
			assert.LessOrEqual(t, a.Top(), p.MaxHeight+overlapTol, "pallet %d placement %d over the ceiling", p.ID, i)

			for j := i + 1; j < len(p.Placements); j++ {
				b := &p.Placements[j]
				dx := math.Min(a.X+a.L, b.X+b.L) - math.Max(a.X, b.X)
				dz := math.Min(a.Z+a.W, b.Z+b.W) - math.Max(a.Z, b.Z)
				dy := math.Min(a.Top(), b.Top()) - math.Max(a.Y, b.Y)
				assert.False(t, dx > overlapTol && dz > overlapTol && dy > overlapTol,
					"pallet %d placements %d and %d intersect", p.ID, i, j)
			}

			if a.Y > overlapTol {
				below := NewHeightMap(p.Length, p.Width)
				for k := range p.Placements {
					if k == i || p.Placements[k].Y >= a.Y {
						continue
					}
					q := &p.Placements[k]
					below.Add(q.X, q.Z, q.L, q.W, q.Top())
				}
				assert.GreaterOrEqual(t, below.SupportPercent(a.X, a.Z, a.L, a.W, a.Y), minSupportPercent,
					"pallet %d placement %d floats at %.1f", p.ID, i, a.Y)
			}
		}
	}
	assert.Equal(t, result.TotalItems, placed, "every item placed exactly once")
}

func TestEngine_Pack_NestedStackCap(t *testing.T) {
	// 13 nesting sections must not pile onto one pallet: ten per pallet is
	// the limit, and the note reports the nested construction.
	result, err := newTestEngine(nil).Pack(context.Background(), []model.OrderLine{
		{SKU: "UG-SS3", Qty: 13},
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalPallets)
	counts := []int{len(result.Pallets[0].Placements), len(result.Pallets[1].Placements)}
	assert.ElementsMatch(t, []int{10, 3}, counts)
	for i := range result.Pallets {
		p := &result.Pallets[i]
		assert.LessOrEqual(t, p.StackHeightIn(), nestedStackMaxHeight+overlapTol)
		assert.Contains(t, p.PackingNote, "nested")
	}
}
