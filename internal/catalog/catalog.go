// Package catalog provides the read-only product catalog: SKU lookup,
// packaging-group classification, and the calibrated rule-of-thumb tables.
package catalog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// ErrUnknownGroup is returned when no classification rule matches a SKU or
// family name. Callers recover by treating the item as GroupOther with the
// unknown flag set.
var ErrUnknownGroup = errors.New("no packaging group matches sku or family")

// prefixMatchMin caps either-side prefix matching so short SKUs cannot match
// pathologically.
const prefixMatchMin = 4

// Catalog is a read-only mapping from SKU to canonical product data. It is
// loaded once at startup and safe for concurrent readers.
type Catalog struct {
	products []model.Product
	bySKU    map[string]int
}

// New builds a catalog from the given products. SKUs are indexed
// case-insensitively; the last product wins on duplicates.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: products,
		bySKU:    make(map[string]int, len(products)),
	}
	for i := range products {
		c.bySKU[NormalizeSKU(products[i].SKU)] = i
	}
	return c
}

// Default returns the catalog seeded with the standard product data.
func Default() *Catalog {
	return New(seedProducts())
}

// NormalizeSKU trims and lowercases a SKU for matching.
func NormalizeSKU(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}

// Lookup finds a product by SKU: exact match first, then either-side prefix
// with a minimum overlap of prefixMatchMin characters.
func (c *Catalog) Lookup(sku string) (*model.Product, bool) {
	key := NormalizeSKU(sku)
	if key == "" {
		return nil, false
	}
	if i, ok := c.bySKU[key]; ok {
		return &c.products[i], true
	}
	if len(key) < prefixMatchMin {
		return nil, false
	}
	for i := range c.products {
		pk := NormalizeSKU(c.products[i].SKU)
		if len(pk) < prefixMatchMin {
			continue
		}
		if strings.HasPrefix(key, pk) || strings.HasPrefix(pk, key) {
			return &c.products[i], true
		}
	}
	return nil, false
}

// Products returns the catalog contents. The slice must not be mutated.
func (c *Catalog) Products() []model.Product {
	return c.products
}

var (
	ddDigitRe       = regexp.MustCompile(`[46]`)
	trailingDigitRe = regexp.MustCompile(`(\d+)\s*$`)
)

// Classify derives the packaging group for a SKU and family name. Rules are
// ordered and the first match wins; family-name fallbacks run after all SKU
// patterns.
func Classify(sku, family string) (model.PackagingGroup, error) {
	s := NormalizeSKU(sku)
	f := strings.ToLower(strings.TrimSpace(family))

	switch {
	case strings.Contains(s, "dv215"), strings.HasPrefix(s, "90101-2287"):
		return model.GroupVarsity, nil
	case strings.Contains(s, "dd-4"), strings.Contains(s, "dd4"):
		return model.GroupDoubleDocker4, nil
	case strings.Contains(s, "dd-6"), strings.Contains(s, "dd6"):
		return model.GroupDoubleDocker6, nil
	case strings.Contains(s, "visi"):
		if strings.Contains(s, "2") {
			return model.GroupLockerVisi2, nil
		}
		return model.GroupLockerVisi1, nil
	case strings.Contains(s, "mbv-1"), strings.Contains(s, "mbv1"):
		return model.GroupLockerMetal1, nil
	case strings.Contains(s, "mbv-2"), strings.Contains(s, "mbv2"):
		return model.GroupLockerMetal2, nil
	case strings.HasPrefix(s, "vr"):
		return model.GroupVR, nil
	case strings.HasPrefix(s, "hr"), strings.Contains(s, "hoop"):
		return model.GroupHoopRunner, nil
	case strings.HasPrefix(s, "cs-"), strings.Contains(s, "circle"):
		return model.GroupCircleSeries, nil
	case strings.HasPrefix(s, "ug"), strings.Contains(s, "undergrad"):
		if g, ok := undergradFromCount(trailingNumber(s)); ok {
			return g, nil
		}
		return model.GroupUndergradSS4, nil
	case strings.Contains(s, "skate"), strings.HasPrefix(s, "skd"), strings.Contains(s, "sk8"):
		return model.GroupSkatedock, nil
	case strings.HasPrefix(s, "sst"), strings.Contains(s, "sidestage"), strings.Contains(s, "side-stage"):
		return model.GroupSideStage, nil
	case strings.Contains(s, "sik120"), strings.Contains(s, "sik-120"), strings.HasPrefix(s, "sik"):
		return model.GroupStrutKit, nil
	case strings.Contains(s, "dsm"), strings.Contains(s, "dismount"):
		return model.GroupDismount, nil
	}

	switch {
	case strings.Contains(f, "double docker"):
		if ddDigitRe.FindString(f) == "6" {
			return model.GroupDoubleDocker6, nil
		}
		return model.GroupDoubleDocker4, nil
	case strings.Contains(f, "varsity"):
		return model.GroupVarsity, nil
	case strings.Contains(f, "visi"):
		if strings.Contains(f, "2") {
			return model.GroupLockerVisi2, nil
		}
		return model.GroupLockerVisi1, nil
	case strings.Contains(f, "locker"):
		if strings.Contains(f, "2") {
			return model.GroupLockerMetal2, nil
		}
		return model.GroupLockerMetal1, nil
	case strings.Contains(f, "hoop"):
		return model.GroupHoopRunner, nil
	case strings.Contains(f, "circle"):
		return model.GroupCircleSeries, nil
	case strings.Contains(f, "undergrad"):
		if g, ok := undergradFromCount(trailingNumber(f)); ok {
			return g, nil
		}
		return model.GroupUndergradSS4, nil
	case strings.Contains(f, "skate"):
		return model.GroupSkatedock, nil
	case strings.Contains(f, "side stage"):
		return model.GroupSideStage, nil
	case strings.Contains(f, "strut"):
		return model.GroupStrutKit, nil
	case strings.Contains(f, "dismount"):
		return model.GroupDismount, nil
	case strings.Contains(f, "rack"):
		return model.GroupMixableRack, nil
	}

	return model.GroupOther, ErrUnknownGroup
}

// trailingNumber extracts the trailing integer of a SKU or family string.
func trailingNumber(s string) int {
	m := trailingDigitRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// undergradFromCount maps a bike count to the Undergrad group variant.
func undergradFromCount(n int) (model.PackagingGroup, bool) {
	switch n {
	case 3:
		return model.GroupUndergradSS3, true
	case 4:
		return model.GroupUndergradSS4, true
	case 5:
		return model.GroupUndergradSS5, true
	case 6:
		return model.GroupUndergradDS6, true
	case 8:
		return model.GroupUndergradDS8, true
	case 10:
		return model.GroupUndergradDS10, true
	}
	return "", false
}
