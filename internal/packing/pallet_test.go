package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// testItem builds an order item with instance identity, so dedup by
// (LineIndex, InstanceIndex) works the way resolved orders do.
func testItem(line, instance int, sku string, l, w, h, lbs float64) model.Item {
	return model.Item{
		LineIndex:     line,
		InstanceIndex: instance,
		SKU:           sku,
		DisplayName:   sku,
		Dims:          model.CartonDims{LengthIn: l, WidthIn: w, HeightIn: h, WeightLbs: lbs},
	}
}

func testItems(sku string, qty int, l, w, h, lbs float64) []model.Item {
	items := make([]model.Item, qty)
	for i := range items {
		items[i] = testItem(0, i, sku, l, w, h, lbs)
	}
	return items
}

func TestGroupByHeight(t *testing.T) {
	items := []model.Item{
		testItem(0, 0, "A", 20, 16, 13.4, 31),
		testItem(1, 0, "B", 20, 16, 13.35, 28),
		testItem(2, 0, "C", 20, 16, 21.6, 54),
	}

	groups := groupByHeight(items, 0.1)

	require.Len(t, groups, 2)
	assert.Equal(t, 21.6, groups[0].height, "tallest group comes first")
	assert.Len(t, groups[0].items, 1)
	assert.Equal(t, 13.4, groups[1].height)
	assert.Len(t, groups[1].items, 2)
	assert.InDelta(t, 59.0, groups[1].weight, 1e-9)
	assert.InDelta(t, 2*20*16, groups[1].footprint, 1e-9)
}

func TestGroupByHeight_ToleranceBoundary(t *testing.T) {
	items := []model.Item{
		testItem(0, 0, "A", 20, 16, 13.4, 31),
		testItem(1, 0, "B", 20, 16, 13.2, 31),
	}

	assert.Len(t, groupByHeight(items, 0.1), 2, "0.2 inch gap exceeds the tolerance")
	assert.Len(t, groupByHeight(items, 0.5), 1)
}

func TestPackPallet(t *testing.T) {
	spec := PalletSpec{Length: 48, Width: 40, MaxHeight: 72, MaxWeight: 1500}

	t.Run("empty input", func(t *testing.T) {
		_, _, err := PackPallet(spec, nil, heightStep, SplitShorterAxis)
		assert.ErrorIs(t, err, ErrOrderEmpty)
	})

	t.Run("single item", func(t *testing.T) {
		pallet, leftover, err := PackPallet(spec, testItems("VR2", 1, 42.8, 24.9, 13.4, 31), heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Empty(t, leftover)
		require.Len(t, pallet.Placements, 1)
		assert.Equal(t, 0.0, pallet.Placements[0].Y)
		assert.Equal(t, "VR2", pallet.Placements[0].SKU)
	})

	t.Run("layer tiling", func(t *testing.T) {
		// Four per layer on a 48x40 deck, five layers under the 72" ceiling.
		pallet, leftover, err := PackPallet(spec, testItems("BOX", 8, 24, 20, 12, 30), heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Empty(t, leftover)
		require.Len(t, pallet.Placements, 8)

		byLevel := map[float64]int{}
		for _, p := range pallet.Placements {
			byLevel[p.Y]++
		}
		assert.Equal(t, 4, byLevel[0.0])
		assert.Equal(t, 4, byLevel[12.0])
	})

	t.Run("height ceiling produces leftover", func(t *testing.T) {
		// 28 items need seven layers; only six fit under 72".
		pallet, leftover, err := PackPallet(spec, testItems("BOX", 28, 24, 20, 12, 10), heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Len(t, pallet.Placements, 24)
		assert.Len(t, leftover, 4)
	})

	t.Run("weight ceiling produces leftover", func(t *testing.T) {
		// 400 lbs each: the fourth item would push past 1500.
		pallet, leftover, err := PackPallet(spec, testItems("HEAVY", 5, 24, 20, 12, 400), heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Len(t, pallet.Placements, 3)
		assert.Len(t, leftover, 2)
	})

	t.Run("heaviest group takes the bottom layer", func(t *testing.T) {
		items := append(
			testItems("LIGHT", 2, 24, 20, 10, 5),
			testItem(1, 0, "HEAVY", 48, 40, 20, 200),
		)
		pallet, leftover, err := PackPallet(spec, items, heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Empty(t, leftover)

		for _, p := range pallet.Placements {
			if p.SKU == "HEAVY" {
				assert.Equal(t, 0.0, p.Y, "heavy carton belongs on the deck")
			} else {
				assert.Equal(t, 20.0, p.Y)
			}
		}
	})

	t.Run("upper layer must rest on the one below", func(t *testing.T) {
		// The wide carton's best fit at 10" would hang mostly over open air
		// beside the small base, so it spills to the leftover instead.
		items := append(
			testItems("BASE", 1, 20, 20, 10, 200),
			testItem(1, 0, "WIDE", 40, 38, 8, 20),
		)
		pallet, leftover, err := PackPallet(spec, items, heightStep, SplitShorterAxis)
		require.NoError(t, err)
		require.Len(t, pallet.Placements, 1)
		assert.Equal(t, "BASE", pallet.Placements[0].SKU)
		require.Len(t, leftover, 1)
		assert.Equal(t, "WIDE", leftover[0].SKU)
	})

	t.Run("supported upper layer still stacks", func(t *testing.T) {
		items := append(
			testItems("BASE", 1, 44, 40, 10, 200),
			testItem(1, 0, "WIDE", 40, 38, 8, 20),
		)
		pallet, leftover, err := PackPallet(spec, items, heightStep, SplitShorterAxis)
		require.NoError(t, err)
		assert.Empty(t, leftover)
		require.Len(t, pallet.Placements, 2)
		assert.Equal(t, 10.0, pallet.Placements[1].Y)
	})

	t.Run("oversized item never fits", func(t *testing.T) {
		_, _, err := PackPallet(spec, testItems("WIDE", 1, 60, 50, 10, 30), heightStep, SplitShorterAxis)
		assert.ErrorIs(t, err, ErrNoProgress)
	})
}

func TestPackAll(t *testing.T) {
	spec := PalletSpec{Length: 48, Width: 40, MaxHeight: 72, MaxWeight: 1500}

	t.Run("spills onto a second pallet", func(t *testing.T) {
		// 28 cartons need seven layers; the height ceiling caps each pallet
		// at six, so the remainder opens a second pallet.
		pallets, err := PackAll(spec, testItems("BOX", 28, 24, 20, 12, 10), heightStep, SplitShorterAxis)
		require.NoError(t, err)
		require.Len(t, pallets, 2)
		assert.Len(t, pallets[0].Placements, 24)
		assert.Len(t, pallets[1].Placements, 4)
	})

	t.Run("all items placed exactly once", func(t *testing.T) {
		items := testItems("VR2", 40, 42.8, 24.9, 13.4, 31)
		pallets, err := PackAll(spec, items, heightStep, SplitShorterAxis)
		require.NoError(t, err)

		total := 0
		for _, p := range pallets {
			total += len(p.Placements)
		}
		assert.Equal(t, len(items), total)
	})

	t.Run("unpackable item aborts", func(t *testing.T) {
		_, err := PackAll(spec, testItems("WIDE", 1, 60, 50, 10, 30), heightStep, SplitShorterAxis)
		assert.ErrorIs(t, err, ErrNoProgress)
	})
}

func TestPackAllHeightMap(t *testing.T) {
	spec := PalletSpec{Length: 48, Width: 40, MaxHeight: 72, MaxWeight: 1500}

	t.Run("empty input", func(t *testing.T) {
		_, err := PackAllHeightMap(spec, nil)
		assert.ErrorIs(t, err, ErrOrderEmpty)
	})

	t.Run("mixed heights pack onto one pallet", func(t *testing.T) {
		items := append(
			testItems("BIG", 2, 40, 38, 20, 100),
			testItems("SMALL", 4, 10, 10, 8, 5)...,
		)
		pallets, err := PackAllHeightMap(spec, items)
		require.NoError(t, err)
		require.Len(t, pallets, 1)
		assert.Len(t, pallets[0].Placements, 6)
	})

	t.Run("weight ceiling opens a second pallet", func(t *testing.T) {
		pallets, err := PackAllHeightMap(spec, testItems("HEAVY", 4, 24, 20, 12, 400))
		require.NoError(t, err)
		require.Len(t, pallets, 2)
		assert.Len(t, pallets[0].Placements, 3)
		assert.Len(t, pallets[1].Placements, 1)
	})

	t.Run("unpackable item aborts", func(t *testing.T) {
		_, err := PackAllHeightMap(spec, testItems("TALL", 1, 20, 16, 80, 30))
		assert.ErrorIs(t, err, ErrNoProgress)
	})
}
