package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerPacker_FindBestFit(t *testing.T) {
	t.Run("fits empty layer at origin", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(20, 16, true)
		require.NoError(t, err)
		assert.Equal(t, 0.0, f.X)
		assert.Equal(t, 0.0, f.Z)
		assert.Equal(t, 20.0, f.L)
		assert.False(t, f.Rotated)
	})

	t.Run("rotates when only the rotated orientation fits", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(39, 46, true)
		require.NoError(t, err)
		assert.True(t, f.Rotated)
		assert.Equal(t, 46.0, f.L)
		assert.Equal(t, 39.0, f.W)
	})

	t.Run("rotation disallowed fails", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		_, err := lp.FindBestFit(39, 46, false)
		assert.ErrorIs(t, err, ErrDoesNotFit)
	})

	t.Run("too large for the footprint", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		_, err := lp.FindBestFit(50, 42, true)
		assert.ErrorIs(t, err, ErrDoesNotFit)
	})

	t.Run("best short side fit picks the tighter rectangle", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(48, 24, false)
		require.NoError(t, err)
		lp.Place(f)

		// Remaining free space is the 48x16 strip; a 48x16 candidate is an
		// exact fit there.
		f2, err := lp.FindBestFit(48, 16, false)
		require.NoError(t, err)
		assert.Equal(t, 0.0, f2.X)
		assert.Equal(t, 24.0, f2.Z)
		assert.Equal(t, 0.0, f2.Score)
	})
}

func TestLayerPacker_Place(t *testing.T) {
	t.Run("exact fill leaves no free space", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(48, 40, false)
		require.NoError(t, err)
		lp.Place(f)

		assert.Empty(t, lp.FreeRects())

		_, err = lp.FindBestFit(1, 1, false)
		assert.ErrorIs(t, err, ErrDoesNotFit)
	})

	t.Run("guillotine split keeps both remainders usable", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(24, 20, false)
		require.NoError(t, err)
		lp.Place(f)

		// Both the right strip and the top strip survive the split, in some
		// partition of the L-shaped remainder.
		free := lp.FreeRects()
		require.Len(t, free, 2)
		area := 0.0
		for _, r := range free {
			area += r[2] * r[3]
		}
		assert.InDelta(t, 48*40-24*20, area, 0.01)
	})

	t.Run("slivers below the minimum side are dropped", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFit(47.8, 40, false)
		require.NoError(t, err)
		lp.Place(f)

		assert.Empty(t, lp.FreeRects(), "a 0.2 inch strip is unusable")
	})

	t.Run("merge rejoins split remainders", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)

		f, err := lp.FindBestFit(24, 40, false)
		require.NoError(t, err)
		lp.Place(f)

		free := lp.FreeRects()
		require.Len(t, free, 1)
		assert.Equal(t, [4]float64{24, 0, 24, 40}, free[0])
	})

	t.Run("fills a layer with uniform cartons", func(t *testing.T) {
		// Four 24x20 cartons tile a 48x40 deck exactly.
		lp := NewLayerPacker(48, 40)
		for i := 0; i < 4; i++ {
			f, err := lp.FindBestFit(24, 20, true)
			require.NoError(t, err, "carton %d must fit", i+1)
			lp.Place(f)
		}
		_, err := lp.FindBestFit(24, 20, true)
		assert.ErrorIs(t, err, ErrDoesNotFit)
	})
}

func TestLayerPacker_FindBestFitWithAdjacency(t *testing.T) {
	t.Run("corner placement outranks interior", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		f, err := lp.FindBestFitWithAdjacency(20, 16, false)
		require.NoError(t, err)
		assert.True(t, f.X <= 0.5 || f.X+f.L >= 47.5)
		assert.True(t, f.Z <= 0.5 || f.Z+f.W >= 39.5)
	})

	t.Run("adjacency score beats plain score", func(t *testing.T) {
		lp := NewLayerPacker(48, 40)
		plain, err := lp.FindBestFit(20, 16, false)
		require.NoError(t, err)
		adj, err := lp.FindBestFitWithAdjacency(20, 16, false)
		require.NoError(t, err)
		assert.Less(t, adj.Score, plain.Score)
	})
}

func TestLayerPackerSplit_Rules(t *testing.T) {
	// All three split rules must partition the same L-shaped remainder without
	// losing area.
	for _, rule := range []SplitRule{SplitShorterAxis, SplitLongerAxis, SplitMinArea} {
		lp := NewLayerPackerSplit(48, 40, rule)
		f, err := lp.FindBestFit(30, 25, false)
		require.NoError(t, err)
		lp.Place(f)

		area := 0.0
		for _, r := range lp.FreeRects() {
			area += r[2] * r[3]
		}
		assert.InDelta(t, 48*40-30*25, area, 0.01, "split rule %d lost free area", rule)
	}
}
