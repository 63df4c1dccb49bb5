package packing

import (
	"math"
	"sort"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// heightGroup is a run of items whose carton heights fall within the packer's
// height tolerance of each other, so they can share a layer plane.
type heightGroup struct {
	height    float64 // tallest height in the group, governs the layer
	items     []model.Item
	weight    float64
	footprint float64
}

// groupByHeight buckets items into height groups. Items are sorted tallest
// first so each group's first member carries the governing height.
func groupByHeight(items []model.Item, tol float64) []*heightGroup {
	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Dims.HeightIn > sorted[j].Dims.HeightIn
	})

	var groups []*heightGroup
	for _, it := range sorted {
		var g *heightGroup
		for _, cand := range groups {
			if cand.height-it.Dims.HeightIn <= tol {
				g = cand
				break
			}
		}
		if g == nil {
			g = &heightGroup{height: it.Dims.HeightIn}
			groups = append(groups, g)
		}
		g.items = append(g.items, it)
		g.weight += it.Dims.WeightLbs
		g.footprint += it.Dims.FootprintArea()
	}
	return groups
}

// PackPallet fills one pallet with items using layer-by-layer guillotine
// packing. The bottom layer takes the heaviest height group; layers above take
// the group with the greatest total footprint area, so broad cartons form
// stable platforms. A height map accumulated from the placed layers gates
// every position above the deck: a carton only lands where the layers below
// actually support it. Returns the packed pallet and the items that did not
// fit.
func PackPallet(spec PalletSpec, items []model.Item, heightTol float64, split SplitRule) (*model.Pallet, []model.Item, error) {
	if len(items) == 0 {
		return nil, nil, ErrOrderEmpty
	}

	pallet := &model.Pallet{
		Length:    spec.Length,
		Width:     spec.Width,
		MaxHeight: spec.MaxHeight,
		MaxWeight: spec.MaxWeight,
		Footprint: [2]float64{spec.Length, spec.Width},
	}

	remaining := make([]model.Item, len(items))
	copy(remaining, items)
	hm := NewHeightMap(spec.Length, spec.Width)
	cursorY := 0.0
	weight := 0.0

	for len(remaining) > 0 {
		groups := groupByHeight(remaining, heightTol)
		var g *heightGroup
		for _, cand := range groups {
			if cursorY+cand.height > spec.MaxHeight+overlapTol {
				continue
			}
			if g == nil {
				g = cand
				continue
			}
			if cursorY == 0 {
				if cand.weight > g.weight {
					g = cand
				}
			} else if cand.footprint > g.footprint {
				g = cand
			}
		}
		if g == nil {
			break // nothing left fits under the height ceiling
		}

		placed, leftoverGroup, layerWeight, layerHeight := packLayer(spec, hm, g.items, cursorY, weight, split)
		if len(placed) == 0 {
			// the chosen group made no progress; drop it from contention
			// and retry with whatever remains
			if len(groups) == 1 {
				break
			}
			remaining = withoutGroup(remaining, g)
			leftover := append([]model.Item(nil), g.items...)
			p2, rest, err := packTail(spec, hm, pallet, remaining, cursorY, weight, heightTol, split)
			if err != nil {
				return nil, nil, err
			}
			return p2, append(rest, leftover...), nil
		}

		pallet.Placements = append(pallet.Placements, placed...)
		for i := range placed {
			pl := &placed[i]
			hm.Add(pl.X, pl.Z, pl.L, pl.W, pl.Top())
		}
		weight += layerWeight
		cursorY += layerHeight
		remaining = withoutGroup(remaining, g)
		remaining = append(remaining, leftoverGroup...)

		if weight >= spec.MaxWeight-overlapTol {
			break
		}
	}

	if len(pallet.Placements) == 0 {
		return nil, nil, ErrNoProgress
	}
	return pallet, remaining, nil
}

// packTail resumes packing an already-started pallet after a height group was
// skipped entirely.
func packTail(spec PalletSpec, hm *HeightMap, pallet *model.Pallet, items []model.Item, cursorY, weight, heightTol float64, split SplitRule) (*model.Pallet, []model.Item, error) {
	if len(items) == 0 {
		if len(pallet.Placements) == 0 {
			return nil, nil, ErrNoProgress
		}
		return pallet, nil, nil
	}
	remaining := items
	for len(remaining) > 0 {
		groups := groupByHeight(remaining, heightTol)
		var g *heightGroup
		for _, cand := range groups {
			if cursorY+cand.height > spec.MaxHeight+overlapTol {
				continue
			}
			if g == nil || cand.footprint > g.footprint {
				g = cand
			}
		}
		if g == nil {
			break
		}
		placed, leftoverGroup, layerWeight, layerHeight := packLayer(spec, hm, g.items, cursorY, weight, split)
		if len(placed) == 0 {
			break
		}
		pallet.Placements = append(pallet.Placements, placed...)
		for i := range placed {
			pl := &placed[i]
			hm.Add(pl.X, pl.Z, pl.L, pl.W, pl.Top())
		}
		weight += layerWeight
		cursorY += layerHeight
		remaining = withoutGroup(remaining, g)
		remaining = append(remaining, leftoverGroup...)
		if weight >= spec.MaxWeight-overlapTol {
			break
		}
	}
	if len(pallet.Placements) == 0 {
		return nil, nil, ErrNoProgress
	}
	return pallet, remaining, nil
}

// packLayer places as many of the group's items as fit into a single layer at
// the given elevation. Above the deck, a fit only counts when enough of its
// bottom face rests on the layers already built; items whose best fit hangs
// over a hole go to the leftover instead. Returns the placements, the items
// that did not fit, the weight added, and the governing layer height.
func packLayer(spec PalletSpec, hm *HeightMap, items []model.Item, y, currentWeight float64, split SplitRule) (placed []model.Placement, leftover []model.Item, layerWeight, layerHeight float64) {
	lp := NewLayerPackerSplit(spec.Length, spec.Width, split)

	// largest footprint first keeps the guillotine cuts clean
	ordered := make([]model.Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Dims.FootprintArea() > ordered[j].Dims.FootprintArea()
	})

	for _, it := range ordered {
		if currentWeight+layerWeight+it.Dims.WeightLbs > spec.MaxWeight+overlapTol {
			leftover = append(leftover, it)
			continue
		}
		fit, err := lp.FindBestFitWithAdjacency(it.Dims.LengthIn, it.Dims.WidthIn, true)
		if err != nil {
			leftover = append(leftover, it)
			continue
		}
		if y > 0 && hm.SupportPercent(fit.X, fit.Z, fit.L, fit.W, y) < minSupportPercent {
			leftover = append(leftover, it)
			continue
		}
		lp.Place(fit)
		p := model.Placement{
			X: fit.X, Y: y, Z: fit.Z,
			L: fit.L, W: fit.W, H: it.Dims.HeightIn,
			SKU:           it.SKU,
			DisplayName:   it.DisplayName,
			WeightLbs:     it.Dims.WeightLbs,
			LineIndex:     it.LineIndex,
			InstanceIndex: it.InstanceIndex,
			Unknown:       it.Unknown,
		}
		if fit.Rotated {
			p.OrientationID = 1
		}
		placed = append(placed, p)
		layerWeight += it.Dims.WeightLbs
		if it.Dims.HeightIn > layerHeight {
			layerHeight = it.Dims.HeightIn
		}
	}
	layerHeight = math.Round(layerHeight/heightStep) * heightStep
	return placed, leftover, layerWeight, layerHeight
}

// withoutGroup removes one occurrence of each group member from items.
func withoutGroup(items []model.Item, g *heightGroup) []model.Item {
	used := make(map[int]bool, len(g.items))
	for _, it := range g.items {
		for i, cand := range items {
			if used[i] {
				continue
			}
			if cand.LineIndex == it.LineIndex && cand.InstanceIndex == it.InstanceIndex {
				used[i] = true
				break
			}
		}
	}
	var out []model.Item
	for i, it := range items {
		if !used[i] {
			out = append(out, it)
		}
	}
	return out
}

// PackAll packs items across as many pallets as needed with the layered
// packer, in a loop guarded against non-progress.
func PackAll(spec PalletSpec, items []model.Item, heightTol float64, split SplitRule) ([]*model.Pallet, error) {
	var pallets []*model.Pallet
	remaining := items
	for len(remaining) > 0 {
		pallet, leftover, err := PackPallet(spec, remaining, heightTol, split)
		if err != nil {
			return nil, err
		}
		if len(leftover) >= len(remaining) {
			return nil, ErrNoProgress
		}
		pallets = append(pallets, pallet)
		remaining = leftover
	}
	return pallets, nil
}

// PackAllHeightMap packs items with the tetris-style height-map packer,
// sorting by volume descending. It is the fallback when the layered
// strategies fail to place everything.
func PackAllHeightMap(spec PalletSpec, items []model.Item) ([]*model.Pallet, error) {
	if len(items) == 0 {
		return nil, ErrOrderEmpty
	}
	ordered := make([]model.Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Dims.Volume() > ordered[j].Dims.Volume()
	})

	var pallets []*model.Pallet
	remaining := ordered
	for len(remaining) > 0 {
		pallet := &model.Pallet{
			Length:    spec.Length,
			Width:     spec.Width,
			MaxHeight: spec.MaxHeight,
			MaxWeight: spec.MaxWeight,
			Footprint: [2]float64{spec.Length, spec.Width},
		}
		hm := NewHeightMap(spec.Length, spec.Width)
		weight := 0.0
		var leftover []model.Item

		for _, it := range remaining {
			if weight+it.Dims.WeightLbs > spec.MaxWeight+overlapTol {
				leftover = append(leftover, it)
				continue
			}
			c := findPosition(hm, pallet.Placements, spec, it.Dims.LengthIn, it.Dims.WidthIn, it.Dims.HeightIn, false)
			if c == nil {
				leftover = append(leftover, it)
				continue
			}
			p := model.Placement{
				X: c.x, Y: c.y, Z: c.z,
				L: c.l, W: c.w, H: c.h,
				SKU:           it.SKU,
				DisplayName:   it.DisplayName,
				WeightLbs:     it.Dims.WeightLbs,
				LineIndex:     it.LineIndex,
				InstanceIndex: it.InstanceIndex,
				Unknown:       it.Unknown,
			}
			if c.rotated {
				p.OrientationID = 1
			}
			pallet.Placements = append(pallet.Placements, p)
			hm.Add(c.x, c.z, c.l, c.w, c.y+c.h)
			weight += it.Dims.WeightLbs
		}

		if len(pallet.Placements) == 0 {
			return nil, ErrNoProgress
		}
		pallets = append(pallets, pallet)
		remaining = leftover
	}
	return pallets, nil
}
