package packing

import (
	"math"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// hmResolution is the height-map cell size in inches.
const hmResolution = 0.5

// HeightMap tracks, at 0.5" resolution, the highest occupied top over every
// cell of a pallet footprint. It answers where a new box comes to rest under
// gravity and how much of its bottom face would be supported there.
type HeightMap struct {
	length, width float64
	cols, rows    int
	cells         []float64
}

// NewHeightMap creates an empty height map for a footprint.
func NewHeightMap(length, width float64) *HeightMap {
	cols := int(math.Ceil(length / hmResolution))
	rows := int(math.Ceil(width / hmResolution))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &HeightMap{
		length: length,
		width:  width,
		cols:   cols,
		rows:   rows,
		cells:  make([]float64, cols*rows),
	}
}

// FromPlacements builds a height map already loaded with the placements.
func FromPlacements(length, width float64, placements []model.Placement) *HeightMap {
	hm := NewHeightMap(length, width)
	for i := range placements {
		p := &placements[i]
		hm.Add(p.X, p.Z, p.L, p.W, p.Top())
	}
	return hm
}

// cellRange clamps a footprint to cell indices.
func (hm *HeightMap) cellRange(x, z, l, w float64) (c0, c1, r0, r1 int) {
	c0 = int(x / hmResolution)
	c1 = int(math.Ceil((x + l) / hmResolution))
	r0 = int(z / hmResolution)
	r1 = int(math.Ceil((z + w) / hmResolution))
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > hm.cols {
		c1 = hm.cols
	}
	if r1 > hm.rows {
		r1 = hm.rows
	}
	return
}

// RestingY returns the height at which a box with the given footprint comes
// to rest, rounded to 0.1" so layer planes stay coincident.
func (hm *HeightMap) RestingY(x, z, l, w float64) float64 {
	c0, c1, r0, r1 := hm.cellRange(x, z, l, w)
	y := 0.0
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if v := hm.cells[r*hm.cols+c]; v > y {
				y = v
			}
		}
	}
	return math.Round(y/heightStep) * heightStep
}

// SupportPercent returns the fraction of the footprint's cells whose stored
// top is within half a cell of the target resting height.
func (hm *HeightMap) SupportPercent(x, z, l, w, targetY float64) float64 {
	c0, c1, r0, r1 := hm.cellRange(x, z, l, w)
	total, supported := 0, 0
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			total++
			if hm.cells[r*hm.cols+c] >= targetY-hmResolution {
				supported++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(supported) / float64(total)
}

// Add raises the cells under a footprint to the given top height.
func (hm *HeightMap) Add(x, z, l, w, top float64) {
	c0, c1, r0, r1 := hm.cellRange(x, z, l, w)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if hm.cells[r*hm.cols+c] < top {
				hm.cells[r*hm.cols+c] = top
			}
		}
	}
}

// Rebuild resets the map and reloads it from the surviving placements. Used
// after the consolidator removes an item so stale support disappears.
func (hm *HeightMap) Rebuild(placements []model.Placement) {
	for i := range hm.cells {
		hm.cells[i] = 0
	}
	for i := range placements {
		p := &placements[i]
		hm.Add(p.X, p.Z, p.L, p.W, p.Top())
	}
}

// minSupportPercent is the gravity rule: a placement off the deck needs at
// least this fraction of its bottom face resting on other placements.
const minSupportPercent = 0.30

// hmCandidate is a scored position from the tetris-style search.
type hmCandidate struct {
	x, y, z float64
	l, w, h float64
	rotated bool
	score   float64
}

// findPosition searches for the best position of a box on the pallet.
// It first scans edge-aligned candidates (origin plus every placement edge on
// both axes); if none fits it falls back to a 1" grid scan. The score makes
// low resting heights dominate, then back-to-front, then left-to-right, with
// an adjacency reward.
func findPosition(hm *HeightMap, placements []model.Placement, spec PalletSpec,
	l, w, h float64, edgesOnly bool) *hmCandidate {

	if c := scanPositions(hm, placements, spec, l, w, h, edgeCoords(placements, spec, l, w)); c != nil {
		return c
	}
	if edgesOnly {
		return nil
	}
	return scanPositions(hm, placements, spec, l, w, h, gridCoords(spec))
}

type coordSet struct {
	xs, zs []float64
}

func edgeCoords(placements []model.Placement, spec PalletSpec, l, w float64) coordSet {
	xs := []float64{0}
	zs := []float64{0}
	for i := range placements {
		p := &placements[i]
		xs = append(xs, p.X, p.X+p.L)
		zs = append(zs, p.Z, p.Z+p.W)
	}
	return coordSet{xs: xs, zs: zs}
}

func gridCoords(spec PalletSpec) coordSet {
	var xs, zs []float64
	for x := 0.0; x < spec.Length; x += 1.0 {
		xs = append(xs, x)
	}
	for z := 0.0; z < spec.Width; z += 1.0 {
		zs = append(zs, z)
	}
	return coordSet{xs: xs, zs: zs}
}

func scanPositions(hm *HeightMap, placements []model.Placement, spec PalletSpec,
	l, w, h float64, coords coordSet) *hmCandidate {

	var best *hmCandidate
	orientations := [][2]float64{{l, w}}
	if l != w {
		orientations = append(orientations, [2]float64{w, l})
	}

	for oi, o := range orientations {
		cl, cw := o[0], o[1]
		if cl > spec.Length+overlapTol || cw > spec.Width+overlapTol {
			continue
		}
		for _, x := range coords.xs {
			if x+cl > spec.Length+overlapTol {
				continue
			}
			for _, z := range coords.zs {
				if z+cw > spec.Width+overlapTol {
					continue
				}
				y := hm.RestingY(x, z, cl, cw)
				if y+h > spec.MaxHeight+overlapTol {
					continue
				}
				if y > 0 && hm.SupportPercent(x, z, cl, cw, y) < minSupportPercent {
					continue
				}
				adj := contactCount(placements, spec, x, y, z, cl, cw)
				score := y*1e6 + z*1e3 + x*10 + h*0.1 - float64(adj)*500
				if best == nil || score < best.score {
					best = &hmCandidate{x: x, y: y, z: z, l: cl, w: cw, h: h, rotated: oi == 1, score: score}
				}
			}
		}
	}
	return best
}

// contactCount counts faces touching the pallet edges or placements at the
// same level, within the adjacency tolerance.
func contactCount(placements []model.Placement, spec PalletSpec, x, y, z, l, w float64) int {
	n := 0
	if x <= adjacencyTol {
		n++
	}
	if x+l >= spec.Length-adjacencyTol {
		n++
	}
	if z <= adjacencyTol {
		n++
	}
	if z+w >= spec.Width-adjacencyTol {
		n++
	}
	for i := range placements {
		p := &placements[i]
		if p.Y > y+adjacencyTol || p.Top() < y-adjacencyTol {
			continue
		}
		if spansOverlap(z, w, p.Z, p.W) &&
			(math.Abs(x-(p.X+p.L)) <= adjacencyTol || math.Abs(p.X-(x+l)) <= adjacencyTol) {
			n++
		}
		if spansOverlap(x, l, p.X, p.L) &&
			(math.Abs(z-(p.Z+p.W)) <= adjacencyTol || math.Abs(p.Z-(z+w)) <= adjacencyTol) {
			n++
		}
	}
	return n
}
