package validation

import (
	"math"

	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/domain/model"
)

// Predict runs the rule-of-thumb estimate used for shipment validation. It
// deliberately bypasses the 3-D packer: each line contributes
// ceil(qty / units_per_pallet) pallets and qty * weight_per_unit pounds from
// the calibrated tables, which is the same rule the tables were fitted
// against historical bills of lading with.
func Predict(items []model.Item) (breakdown []model.LinePrediction, pallets int, weightLbs float64) {
	type lineKey struct {
		line int
		sku  string
	}
	counts := make(map[lineKey]int)
	groups := make(map[lineKey]model.PackagingGroup)
	var order []lineKey

	for _, it := range items {
		k := lineKey{line: it.LineIndex, sku: it.SKU}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			groups[k] = it.Group
		}
		counts[k]++
	}

	for _, k := range order {
		group := groups[k]
		upp, ok := catalog.UnitsPerPallet[group]
		if !ok || upp <= 0 {
			upp = catalog.UnitsPerPallet[model.GroupOther]
		}
		wpu, ok := catalog.WeightPerUnit[group]
		if !ok {
			wpu = catalog.WeightPerUnit[model.GroupOther]
		}
		qty := counts[k]
		p := model.LinePrediction{
			SKU:            k.sku,
			Group:          group,
			Qty:            qty,
			UnitsPerPallet: upp,
			Pallets:        int(math.Ceil(float64(qty) / float64(upp))),
			WeightLbs:      float64(qty) * wpu,
		}
		breakdown = append(breakdown, p)
		pallets += p.Pallets
		weightLbs += p.WeightLbs
	}
	return breakdown, pallets, weightLbs
}
