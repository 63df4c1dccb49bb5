package packing

import "github.com/velofab/pallet-service/internal/domain/model"

// PalletSpec is the physical envelope a bucket packs into.
type PalletSpec struct {
	Length    float64
	Width     float64
	MaxHeight float64
	MaxWeight float64
	Note      string
}

// Largest standard footprint across all specs. Items whose two longest
// extents exceed it are routed to dedicated oversized pallets.
const (
	maxStandardLength = 86.0
	maxStandardWidth  = 50.0
)

// Bucket names the packing policy a group routes through.
type Bucket string

const (
	BucketDoubleDocker       Bucket = "double-docker"
	BucketLockerHeavy        Bucket = "locker-heavy"
	BucketLockerVisi         Bucket = "locker-visi"
	BucketSkatedock          Bucket = "skatedock"
	BucketUndergradOversized Bucket = "undergrad-oversized"
	BucketStretchOversized   Bucket = "stretch-oversized"
	BucketMixableRack        Bucket = "mixable-rack"
	BucketOther              Bucket = "other"
)

// BucketFor maps a packaging group to its packing policy bucket.
func BucketFor(g model.PackagingGroup) Bucket {
	switch g {
	case model.GroupDoubleDocker4, model.GroupDoubleDocker6:
		return BucketDoubleDocker
	case model.GroupLockerMetal1, model.GroupLockerMetal2:
		return BucketLockerHeavy
	case model.GroupLockerVisi1, model.GroupLockerVisi2:
		return BucketLockerVisi
	case model.GroupSkatedock:
		return BucketSkatedock
	case model.GroupUndergradSS3, model.GroupUndergradSS4, model.GroupUndergradSS5,
		model.GroupUndergradDS6, model.GroupUndergradDS8, model.GroupUndergradDS10:
		return BucketUndergradOversized
	case model.GroupSideStage, model.GroupStrutKit, model.GroupDismount:
		return BucketStretchOversized
	case model.GroupVarsity, model.GroupVR, model.GroupHoopRunner,
		model.GroupCircleSeries, model.GroupMixableRack:
		return BucketMixableRack
	default:
		return BucketOther
	}
}

// SpecFor returns the pallet spec for a bucket. Skatedock is quantity
// dependent: 3-6 sections ship flat on the long 81x32 skid, 7-9 stand
// vertically on the 44x44 skid, anything else falls back to the flat skid
// because a section is longer than the standard 48x40 deck.
func SpecFor(b Bucket, qty int) PalletSpec {
	switch b {
	case BucketLockerHeavy:
		return PalletSpec{Length: 48, Width: 40, MaxHeight: 78, MaxWeight: 2200}
	case BucketLockerVisi:
		return PalletSpec{Length: 48, Width: 40, MaxHeight: 78, MaxWeight: 1900}
	case BucketSkatedock:
		switch {
		case qty >= 7 && qty <= 9:
			return PalletSpec{Length: 44, Width: 44, MaxHeight: 81, MaxWeight: 1600, Note: "skatedock sections packed vertically"}
		default:
			return PalletSpec{Length: 81, Width: 32, MaxHeight: 63, MaxWeight: 1200, Note: "skatedock sections packed flat"}
		}
	case BucketUndergradOversized:
		return PalletSpec{Length: 86, Width: 48, MaxHeight: 42, MaxWeight: 1800, Note: "undergrad sections nested in stacks"}
	case BucketStretchOversized:
		return PalletSpec{Length: 80, Width: 43, MaxHeight: 45, MaxWeight: 1600}
	case BucketMixableRack:
		return PalletSpec{Length: 86, Width: 50, MaxHeight: 96, MaxWeight: 1750}
	default:
		return PalletSpec{Length: 48, Width: 40, MaxHeight: 72, MaxWeight: 1500}
	}
}

// Dispatch partitions items into policy buckets. It only separates; packing
// happens downstream. Iteration order of the result is fixed by bucketOrder
// so pallet numbering stays deterministic.
func Dispatch(items []model.Item) map[Bucket][]model.Item {
	buckets := make(map[Bucket][]model.Item)
	for _, it := range items {
		b := BucketFor(it.Group)
		buckets[b] = append(buckets[b], it)
	}
	return buckets
}

// bucketOrder fixes the order standard buckets are packed and numbered in.
var bucketOrder = []Bucket{
	BucketLockerHeavy,
	BucketLockerVisi,
	BucketSkatedock,
	BucketUndergradOversized,
	BucketStretchOversized,
	BucketMixableRack,
	BucketOther,
}

// vertical reports whether the spec stands items on end (height becomes the
// item's longest extent). Only the skatedock vertical skid does this.
func (s PalletSpec) vertical() bool {
	return s.Length == 44 && s.Width == 44
}
