package catalog

import (
	"regexp"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// UnitsPerPallet is the calibrated rule-of-thumb table used by the validation
// predictor and as a fallback when a SKU lacks measured dimensions. Values
// were fitted against historical bills of lading; change them only alongside
// a recalibration run.
var UnitsPerPallet = map[model.PackagingGroup]int{
	model.GroupVarsity:       48,
	model.GroupVR:            16,
	model.GroupDoubleDocker4: 1,
	model.GroupDoubleDocker6: 1,
	model.GroupLockerMetal1:  8,
	model.GroupLockerMetal2:  4,
	model.GroupLockerVisi1:   8,
	model.GroupLockerVisi2:   4,
	model.GroupHoopRunner:    12,
	model.GroupCircleSeries:  10,
	model.GroupUndergradSS3:  10,
	model.GroupUndergradSS4:  10,
	model.GroupUndergradSS5:  8,
	model.GroupUndergradDS6:  6,
	model.GroupUndergradDS8:  4,
	model.GroupUndergradDS10: 2,
	model.GroupSkatedock:     6,
	model.GroupSideStage:     8,
	model.GroupStrutKit:      60,
	model.GroupDismount:      16,
	model.GroupMixableRack:   15,
	model.GroupOther:         10,
}

// WeightPerUnit pairs with UnitsPerPallet for the rule-of-thumb weight path.
var WeightPerUnit = map[model.PackagingGroup]float64{
	model.GroupVarsity:       30,
	model.GroupVR:            31,
	model.GroupDoubleDocker4: 620,
	model.GroupDoubleDocker6: 810,
	model.GroupLockerMetal1:  96,
	model.GroupLockerMetal2:  182,
	model.GroupLockerVisi1:   108,
	model.GroupLockerVisi2:   205,
	model.GroupHoopRunner:    58,
	model.GroupCircleSeries:  64,
	model.GroupUndergradSS3:  88,
	model.GroupUndergradSS4:  104,
	model.GroupUndergradSS5:  121,
	model.GroupUndergradDS6:  130,
	model.GroupUndergradDS8:  148,
	model.GroupUndergradDS10: 167,
	model.GroupSkatedock:     115,
	model.GroupSideStage:     75,
	model.GroupStrutKit:      12,
	model.GroupDismount:      42,
	model.GroupMixableRack:   45,
	model.GroupOther:         25,
}

// DefaultUnknownDims is assumed for items that match nothing in the catalog
// and carry no override. The unknown flag propagates into the result.
var DefaultUnknownDims = model.CartonDims{LengthIn: 24, WidthIn: 18, HeightIn: 12, WeightLbs: 25}

// hardwareKitPatterns match SKUs that ship inside their parent product's
// carton and must never be packed as separate items.
var hardwareKitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^wak`),
	regexp.MustCompile(`(?i)^(bk|blt|bolt)[-_]`),
	regexp.MustCompile(`(?i)^(wsh|washer|nut)[-_]`),
	regexp.MustCompile(`(?i)^hdw`),
	regexp.MustCompile(`^\d{5,}$`),
}

// servicePatterns match display text of non-product lines: freight, labor and
// other charges that have no physical carton.
var servicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfreight\b`),
	regexp.MustCompile(`(?i)\bshipping\b`),
	regexp.MustCompile(`(?i)\blabor\b`),
	regexp.MustCompile(`(?i)\binstall`),
	regexp.MustCompile(`(?i)\bservice\b`),
	regexp.MustCompile(`(?i)\bfee\b`),
	regexp.MustCompile(`(?i)\btax\b`),
	regexp.MustCompile(`(?i)\bdiscount\b`),
}

// IsHardwareKit reports whether the SKU is a bundled hardware kit.
func IsHardwareKit(sku string) bool {
	s := NormalizeSKU(sku)
	for _, re := range hardwareKitPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// IsServiceLine reports whether the display text describes a charge rather
// than a product.
func IsServiceLine(text string) bool {
	for _, re := range servicePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
