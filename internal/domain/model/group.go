package model

// PackagingGroup classifies a product for packing purposes. The group selects
// the pallet geometry, the packing policy, and the rule-of-thumb table entries.
type PackagingGroup string

const (
	GroupVarsity       PackagingGroup = "varsity"
	GroupVR            PackagingGroup = "vr"
	GroupDoubleDocker4 PackagingGroup = "double-docker-4"
	GroupDoubleDocker6 PackagingGroup = "double-docker-6"
	GroupLockerMetal1  PackagingGroup = "locker-metal-1"
	GroupLockerMetal2  PackagingGroup = "locker-metal-2"
	GroupLockerVisi1   PackagingGroup = "locker-visi-1"
	GroupLockerVisi2   PackagingGroup = "locker-visi-2"
	GroupHoopRunner    PackagingGroup = "hoop-runner"
	GroupCircleSeries  PackagingGroup = "circle-series"
	GroupUndergradSS3  PackagingGroup = "undergrad-ss3"
	GroupUndergradSS4  PackagingGroup = "undergrad-ss4"
	GroupUndergradSS5  PackagingGroup = "undergrad-ss5"
	GroupUndergradDS6  PackagingGroup = "undergrad-ds6"
	GroupUndergradDS8  PackagingGroup = "undergrad-ds8"
	GroupUndergradDS10 PackagingGroup = "undergrad-ds10"
	GroupSkatedock     PackagingGroup = "skatedock"
	GroupSideStage     PackagingGroup = "side-stage"
	GroupStrutKit      PackagingGroup = "strut-kit"
	GroupDismount      PackagingGroup = "dismount"
	GroupMixableRack   PackagingGroup = "mixable-rack"
	GroupOther         PackagingGroup = "other"
)

// IsDoubleDocker reports whether the group routes through the component
// expander instead of the standard pallet packer.
func (g PackagingGroup) IsDoubleDocker() bool {
	return g == GroupDoubleDocker4 || g == GroupDoubleDocker6
}

// IsUndergrad reports whether the group is one of the Undergrad rack variants.
func (g PackagingGroup) IsUndergrad() bool {
	switch g {
	case GroupUndergradSS3, GroupUndergradSS4, GroupUndergradSS5,
		GroupUndergradDS6, GroupUndergradDS8, GroupUndergradDS10:
		return true
	}
	return false
}

// UndergradBikes returns the bike count encoded in an Undergrad group, or 0.
func (g PackagingGroup) UndergradBikes() int {
	switch g {
	case GroupUndergradSS3:
		return 3
	case GroupUndergradSS4:
		return 4
	case GroupUndergradSS5:
		return 5
	case GroupUndergradDS6:
		return 6
	case GroupUndergradDS8:
		return 8
	case GroupUndergradDS10:
		return 10
	}
	return 0
}
