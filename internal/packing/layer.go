package packing

import (
	"math"
	"sort"
)

// SplitRule selects which leftover axis a guillotine cut runs along.
type SplitRule int

const (
	// SplitShorterAxis gives the corner region to the side with the shorter
	// leftover. Default and the only rule the strategy set exercises.
	SplitShorterAxis SplitRule = iota
	// SplitLongerAxis gives the corner region to the longer leftover side.
	SplitLongerAxis
	// SplitMinArea minimizes the larger remainder's area.
	SplitMinArea
)

// freeRect is an axis-aligned free region of one layer, in pallet-plane
// coordinates (x along length, z along width).
type freeRect struct {
	x, z, l, w float64
}

// layerRect is an occupied region, kept for adjacency scoring.
type layerRect struct {
	x, z, l, w float64
}

// Fit describes where a candidate rectangle would land and how good the
// position is. Lower scores are better.
type Fit struct {
	X, Z    float64
	L, W    float64
	Rotated bool
	Score   float64

	rectIdx int
}

// LayerPacker fills one horizontal slice of one pallet with a guillotine
// free-rectangle scheme: Best-Short-Side-Fit selection, a guillotine split of
// the used rectangle, and co-linear merging after every placement.
type LayerPacker struct {
	length, width float64
	split         SplitRule
	free          []freeRect
	placed        []layerRect
}

// NewLayerPacker creates a packer for a full pallet footprint.
func NewLayerPacker(length, width float64) *LayerPacker {
	return NewLayerPackerSplit(length, width, SplitShorterAxis)
}

// NewLayerPackerSplit creates a packer with an explicit split rule.
func NewLayerPackerSplit(length, width float64, split SplitRule) *LayerPacker {
	return &LayerPacker{
		length: length,
		width:  width,
		split:  split,
		free:   []freeRect{{0, 0, length, width}},
	}
}

// FindBestFit returns the Best-Short-Side-Fit position for the candidate
// rectangle, trying both orientations when allowed and the sides differ.
func (lp *LayerPacker) FindBestFit(l, w float64, allowRotation bool) (*Fit, error) {
	return lp.findBest(l, w, allowRotation, false)
}

// FindBestFitWithAdjacency is FindBestFit with the adjacency-aware score:
// each face touching the pallet edge or an already-placed item subtracts 50,
// and a pallet corner subtracts another 100.
func (lp *LayerPacker) FindBestFitWithAdjacency(l, w float64, allowRotation bool) (*Fit, error) {
	return lp.findBest(l, w, allowRotation, true)
}

func (lp *LayerPacker) findBest(l, w float64, allowRotation bool, adjacency bool) (*Fit, error) {
	var best *Fit

	try := func(cl, cw float64, rotated bool) {
		for i, r := range lp.free {
			if cl > r.l+overlapTol || cw > r.w+overlapTol {
				continue
			}
			leftL := r.l - cl
			leftW := r.w - cw
			score := math.Min(leftL, leftW)*1000 + math.Max(leftL, leftW)
			if adjacency {
				score -= 50 * float64(lp.contactFaces(r.x, r.z, cl, cw))
				if lp.isCorner(r.x, r.z, cl, cw) {
					score -= 100
				}
			}
			if best == nil || score < best.Score {
				best = &Fit{X: r.x, Z: r.z, L: cl, W: cw, Rotated: rotated, Score: score, rectIdx: i}
			}
		}
	}

	try(l, w, false)
	if allowRotation && l != w {
		try(w, l, true)
	}

	if best == nil {
		return nil, ErrDoesNotFit
	}
	return best, nil
}

// contactFaces counts faces of the candidate that touch the pallet edge or an
// already-placed rectangle within the adjacency tolerance.
func (lp *LayerPacker) contactFaces(x, z, l, w float64) int {
	n := 0
	if x <= adjacencyTol {
		n++
	}
	if x+l >= lp.length-adjacencyTol {
		n++
	}
	if z <= adjacencyTol {
		n++
	}
	if z+w >= lp.width-adjacencyTol {
		n++
	}
	for _, p := range lp.placed {
		// Vertical faces abut when the x-extents touch and the z-spans overlap.
		if spansOverlap(z, w, p.z, p.w) &&
			(math.Abs(x-(p.x+p.l)) <= adjacencyTol || math.Abs(p.x-(x+l)) <= adjacencyTol) {
			n++
		}
		if spansOverlap(x, l, p.x, p.l) &&
			(math.Abs(z-(p.z+p.w)) <= adjacencyTol || math.Abs(p.z-(z+w)) <= adjacencyTol) {
			n++
		}
	}
	return n
}

func (lp *LayerPacker) isCorner(x, z, l, w float64) bool {
	onX := x <= adjacencyTol || x+l >= lp.length-adjacencyTol
	onZ := z <= adjacencyTol || z+w >= lp.width-adjacencyTol
	return onX && onZ
}

func spansOverlap(a, al, b, bl float64) bool {
	return a < b+bl-overlapTol && b < a+al-overlapTol
}

// Place commits a fit: the used free rectangle is replaced with up to two
// guillotine remainders, co-linear neighbors are merged to a fixpoint, and
// the free list is re-sorted bottom-left-first.
func (lp *LayerPacker) Place(f *Fit) {
	r := lp.free[f.rectIdx]
	lp.free = append(lp.free[:f.rectIdx], lp.free[f.rectIdx+1:]...)
	lp.placed = append(lp.placed, layerRect{f.X, f.Z, f.L, f.W})

	leftL := r.l - f.L
	leftW := r.w - f.W

	var right, top freeRect
	switch {
	case lp.split == SplitLongerAxis && leftL > leftW,
		lp.split == SplitShorterAxis && leftL <= leftW,
		lp.split == SplitMinArea && leftL*r.w <= leftW*r.l:
		// Corner region goes with the top remainder.
		right = freeRect{r.x + f.L, r.z, leftL, f.W}
		top = freeRect{r.x, r.z + f.W, r.l, leftW}
	default:
		right = freeRect{r.x + f.L, r.z, leftL, r.w}
		top = freeRect{r.x, r.z + f.W, f.L, leftW}
	}

	for _, nr := range []freeRect{right, top} {
		if nr.l >= minFreeSide && nr.w >= minFreeSide {
			lp.free = append(lp.free, nr)
		}
	}

	lp.mergeFree()
	sort.Slice(lp.free, func(i, j int) bool {
		if lp.free[i].z != lp.free[j].z {
			return lp.free[i].z < lp.free[j].z
		}
		return lp.free[i].x < lp.free[j].x
	})
}

// mergeFree joins edge-adjacent free rectangles that share their common edge
// exactly, repeating until no merge applies.
func (lp *LayerPacker) mergeFree() {
	for {
		merged := false
		for i := 0; i < len(lp.free) && !merged; i++ {
			for j := i + 1; j < len(lp.free); j++ {
				a, b := lp.free[i], lp.free[j]
				if m, ok := mergeRects(a, b); ok {
					lp.free[i] = m
					lp.free = append(lp.free[:j], lp.free[j+1:]...)
					merged = true
					break
				}
			}
		}
		if !merged {
			return
		}
	}
}

func mergeRects(a, b freeRect) (freeRect, bool) {
	// Horizontal merge: same z and w, touching on x.
	if eq(a.z, b.z) && eq(a.w, b.w) {
		if eq(a.x+a.l, b.x) {
			return freeRect{a.x, a.z, a.l + b.l, a.w}, true
		}
		if eq(b.x+b.l, a.x) {
			return freeRect{b.x, b.z, a.l + b.l, b.w}, true
		}
	}
	// Vertical merge: same x and l, touching on z.
	if eq(a.x, b.x) && eq(a.l, b.l) {
		if eq(a.z+a.w, b.z) {
			return freeRect{a.x, a.z, a.l, a.w + b.w}, true
		}
		if eq(b.z+b.w, a.z) {
			return freeRect{b.x, b.z, b.l, a.w + b.w}, true
		}
	}
	return freeRect{}, false
}

func eq(a, b float64) bool {
	return math.Abs(a-b) <= overlapTol
}

// FreeRects returns a copy of the free list, mainly for tests.
func (lp *LayerPacker) FreeRects() [][4]float64 {
	out := make([][4]float64, len(lp.free))
	for i, r := range lp.free {
		out[i] = [4]float64{r.x, r.z, r.l, r.w}
	}
	return out
}
