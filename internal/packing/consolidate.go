package packing

import (
	"sort"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// Consolidate runs a single gap-fill pass over the packed pallets: for each
// earlier pallet, walk the later pallets from the back and migrate any
// placement that fits into the earlier pallet under the edge-aligned search.
// DD crates, oversized pallets, and nested undergrad stacks are fixed and
// take no part, and items only migrate between pallets of the same group.
// After every migration the donor's surviving placements are re-seated onto
// their resting heights so nothing floats over the gap. Emptied pallets are
// dropped. After the pass, no later pallet holds an item that would have fit
// on an earlier one under the edge heuristic.
func Consolidate(pallets []*model.Pallet) []*model.Pallet {
	if len(pallets) < 2 {
		return pallets
	}

	movable := func(p *model.Pallet) bool {
		return p.SourceTag == "" && !p.Oversized && !p.Group.IsUndergrad()
	}

	for pi := 0; pi < len(pallets)-1; pi++ {
		recv := pallets[pi]
		if !movable(recv) {
			continue
		}
		spec := PalletSpec{Length: recv.Length, Width: recv.Width, MaxHeight: recv.MaxHeight, MaxWeight: recv.MaxWeight}
		hm := FromPlacements(recv.Length, recv.Width, recv.Placements)
		weight := recv.ItemWeightLbs()

		for qi := len(pallets) - 1; qi > pi; qi-- {
			donor := pallets[qi]
			if !movable(donor) || donor.Group != recv.Group {
				continue
			}
			dhm := NewHeightMap(donor.Length, donor.Width)
			for bi := len(donor.Placements) - 1; bi >= 0; bi-- {
				b := donor.Placements[bi]
				if weight+b.WeightLbs > recv.MaxWeight+overlapTol {
					continue
				}
				c := findPosition(hm, recv.Placements, spec, b.L, b.W, b.H, true)
				if c == nil {
					continue
				}
				moved := b
				moved.X, moved.Y, moved.Z = c.x, c.y, c.z
				moved.L, moved.W = c.l, c.w
				if c.rotated {
					moved.OrientationID = 1 - moved.OrientationID
				}
				recv.Placements = append(recv.Placements, moved)
				hm.Add(c.x, c.z, c.l, c.w, c.y+c.h)
				weight += b.WeightLbs

				donor.Placements = append(donor.Placements[:bi], donor.Placements[bi+1:]...)
				resettle(donor, dhm)
			}
		}
	}

	out := pallets[:0]
	for _, p := range pallets {
		if len(p.Placements) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// resettle drops the donor's surviving placements onto their resting heights
// after a migration removed support from under them. The donor map is rebuilt
// bottom-up so each placement rests on what actually remains.
func resettle(p *model.Pallet, hm *HeightMap) {
	sort.SliceStable(p.Placements, func(i, j int) bool {
		return p.Placements[i].Y < p.Placements[j].Y
	})
	hm.Rebuild(nil)
	for i := range p.Placements {
		pl := &p.Placements[i]
		if y := hm.RestingY(pl.X, pl.Z, pl.L, pl.W); y < pl.Y {
			pl.Y = y
		}
		hm.Add(pl.X, pl.Z, pl.L, pl.W, pl.Top())
	}
}
