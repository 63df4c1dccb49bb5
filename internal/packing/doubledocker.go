package packing

import (
	"fmt"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// Double Docker units ship as components, not cartons. Each assembled unit
// breaks down into upper slides, lower tracks, a hydraulic manifold, and a
// support leg, and the components ride in fixed-capacity crates whose
// internal layout is predetermined on the shop floor.

const (
	ddSlideWeightLbs    = 40.0
	ddTrackWeightLbs    = 30.0
	ddManifoldWeightLbs = 24.0
	ddLegWeightLbs      = 35.0

	// nested slide+track sets per crate, 7 per layer over 3 layers
	ddSetsPerCrate = 21
	// manifolds per crate, 10 per layer over 4 layers
	ddManifoldsPerCrate = 40
	ddLegsPerPallet     = 40

	// crate source tags carried on the emitted pallets
	TagSlideTrack = "dd-slide-track"
	TagManifold   = "dd-manifold"
	TagLegs       = "dd-legs"
	TagCombined   = "dd-combined"
)

// ddCounts is the component total across all Double Docker units in an order.
type ddCounts struct {
	dd4Units, dd6Units int
	sets               int // slide+track nested pairs
	dd4Manifolds       int
	dd6Manifolds       int
	legs               int
}

func countComponents(items []model.Item) ddCounts {
	var c ddCounts
	for _, it := range items {
		switch it.Group {
		case model.GroupDoubleDocker4:
			c.dd4Units++
			c.sets += 2
			c.dd4Manifolds++
			c.legs++
		case model.GroupDoubleDocker6:
			c.dd6Units++
			c.sets += 3
			c.dd6Manifolds++
			c.legs++
		}
	}
	return c
}

func (c ddCounts) group() model.PackagingGroup {
	if c.dd4Units >= c.dd6Units {
		return model.GroupDoubleDocker4
	}
	return model.GroupDoubleDocker6
}

// ExpandDoubleDockers converts Double Docker units into component crates.
// Orders of one or two units ship everything on a single combined pallet;
// larger orders get dedicated crates per component type, with partial last
// crates allowed. DD6 manifolds ride along on slide/track crates, adding
// weight but no modeled placement.
func ExpandDoubleDockers(items []model.Item) []*model.Pallet {
	c := countComponents(items)
	if c.dd4Units+c.dd6Units == 0 {
		return nil
	}
	if c.dd4Units+c.dd6Units <= 2 {
		return []*model.Pallet{combinedPallet(c)}
	}
	return splitCrates(c)
}

func combinedPallet(c ddCounts) *model.Pallet {
	weight := float64(c.sets)*(ddSlideWeightLbs+ddTrackWeightLbs) +
		float64(c.dd4Manifolds+c.dd6Manifolds)*ddManifoldWeightLbs +
		float64(c.legs)*ddLegWeightLbs
	units := c.dd4Units + c.dd6Units
	return cratePallet(crateParams{
		group:     c.group(),
		tag:       TagCombined,
		length:    84, width: 48, boxHeight: 50.5,
		weight: weight,
		label:  fmt.Sprintf("Double Docker components (%d unit(s))", units),
		note:   "combined component pallet, hand-load order posted in crate",
	})
}

func splitCrates(c ddCounts) []*model.Pallet {
	var pallets []*model.Pallet

	stCrates := (c.sets + ddSetsPerCrate - 1) / ddSetsPerCrate
	rideAlongs := spread(c.dd6Manifolds, stCrates)
	remaining := c.sets
	for i := 0; i < stCrates; i++ {
		sets := remaining
		if sets > ddSetsPerCrate {
			sets = ddSetsPerCrate
		}
		remaining -= sets
		weight := float64(sets)*(ddSlideWeightLbs+ddTrackWeightLbs) +
			float64(rideAlongs[i])*ddManifoldWeightLbs
		note := ""
		if rideAlongs[i] > 0 {
			note = fmt.Sprintf("%d ride-along manifold(s) strapped on top", rideAlongs[i])
		}
		pallets = append(pallets, cratePallet(crateParams{
			group:  c.group(),
			tag:    TagSlideTrack,
			length: 80, width: 43, boxHeight: 50.5,
			weight: weight,
			label:  fmt.Sprintf("Slide/track crate (%d nested set(s))", sets),
			note:   note,
		}))
	}

	// DD6 manifolds only get a crate of their own when no slide/track
	// crate exists to carry them
	crated := c.dd4Manifolds
	if stCrates == 0 {
		crated += c.dd6Manifolds
	}
	remaining = crated
	for remaining > 0 {
		n := remaining
		if n > ddManifoldsPerCrate {
			n = ddManifoldsPerCrate
		}
		remaining -= n
		pallets = append(pallets, cratePallet(crateParams{
			group:  c.group(),
			tag:    TagManifold,
			length: 54, width: 28, boxHeight: 49.5,
			weight: float64(n) * ddManifoldWeightLbs,
			label:  fmt.Sprintf("Manifold crate (%d manifold(s))", n),
		}))
	}

	remaining = c.legs
	for remaining > 0 {
		n := remaining
		if n > ddLegsPerPallet {
			n = ddLegsPerPallet
		}
		remaining -= n
		pallets = append(pallets, cratePallet(crateParams{
			group:  c.group(),
			tag:    TagLegs,
			length: 48, width: 45, boxHeight: 47.5,
			weight: float64(n) * ddLegWeightLbs,
			label:  fmt.Sprintf("Legs pallet (%d leg(s))", n),
		}))
	}

	return pallets
}

type crateParams struct {
	group         model.PackagingGroup
	tag           string
	length, width float64
	boxHeight     float64
	weight        float64
	label, note   string
}

// cratePallet builds a pallet holding a single synthetic placement that
// stands in for the whole crate; no internal layout is modeled.
func cratePallet(p crateParams) *model.Pallet {
	return &model.Pallet{
		Group:       p.group,
		Footprint:   [2]float64{p.length, p.width},
		Length:      p.length,
		Width:       p.width,
		MaxHeight:   p.boxHeight,
		MaxWeight:   2200,
		SourceTag:   p.tag,
		PackingNote: p.note,
		Placements: []model.Placement{{
			X: 0, Y: 0, Z: 0,
			L: p.length, W: p.width, H: p.boxHeight,
			SKU:         p.tag,
			DisplayName: p.label,
			WeightLbs:   p.weight,
		}},
	}
}

// spread distributes n ride-alongs over k crates as evenly as possible,
// front-loaded.
func spread(n, k int) []int {
	if k == 0 {
		return nil
	}
	out := make([]int, k)
	for i := 0; n > 0; i = (i + 1) % k {
		out[i]++
		n--
	}
	return out
}
