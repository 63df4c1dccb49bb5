// Package packing implements the deterministic 3-D bin-packing kernel: line
// resolution, group dispatch, the Double Docker component expander, the
// guillotine layer packer, the layered pallet packer with its height-map
// sibling, the multi-strategy runner, the gap-fill consolidator, and the
// freight classifier.
package packing

import "errors"

var (
	// ErrOrderEmpty is returned when an order resolves to zero packable items.
	ErrOrderEmpty = errors.New("order has no packable items")

	// ErrDoesNotFit is returned by the layer packer when no free rectangle can
	// contain the candidate in any orientation.
	ErrDoesNotFit = errors.New("item does not fit any free rectangle")

	// ErrNoProgress is returned when a fresh pallet accepts zero items, which
	// would otherwise loop forever.
	ErrNoProgress = errors.New("no items placed on a fresh pallet")
)

// Geometric tolerances, in inches. Overlap checks use overlapTol; adjacency
// checks use adjacencyTol. Heights snap to heightStep so layer planes stay
// coincident.
const (
	overlapTol   = 0.1
	adjacencyTol = 0.5
	heightStep   = 0.1
	minFreeSide  = 0.5
)
