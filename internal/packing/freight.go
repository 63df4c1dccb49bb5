package packing

import "github.com/velofab/pallet-service/internal/domain/model"

// classStep maps a minimum shipping density (lb/ft³) to an NMFC class.
// Denser freight gets a lower class.
type classStep struct {
	minDensity float64
	class      float64
}

var classTable = []classStep{
	{50, 50},
	{35, 55},
	{30, 60},
	{22.5, 65},
	{15, 70},
	{13.5, 77.5},
	{12, 85},
	{10.5, 92.5},
	{9, 100},
	{8, 110},
	{7, 125},
	{6, 150},
	{5, 175},
	{4, 200},
	{3, 250},
	{2, 300},
	{1, 400},
}

// FreightClass returns the NMFC class for a shipping density.
func FreightClass(density float64) float64 {
	for _, s := range classTable {
		if density >= s.minDensity {
			return s.class
		}
	}
	return 500
}

// parcel eligibility limits, per item and per order
const (
	parcelMaxItemWeightLbs  = 50.0
	parcelMaxItemVolumeIn3  = 1728.0
	parcelMaxTotalWeightLbs = 150.0
)

// ParcelEligible reports whether every item can ship as an individual parcel
// and the order total stays under the parcel ceiling.
func ParcelEligible(items []model.Item) bool {
	if len(items) == 0 {
		return false
	}
	total := 0.0
	for _, it := range items {
		if it.Dims.WeightLbs > parcelMaxItemWeightLbs {
			return false
		}
		if it.Dims.Volume() > parcelMaxItemVolumeIn3 {
			return false
		}
		total += it.Dims.WeightLbs
	}
	return total < parcelMaxTotalWeightLbs
}

// ShippingMode labels the shipment from its total weight and pallet count.
// The parcel short-circuit is decided earlier, from the items themselves.
func ShippingMode(totalWeightLbs float64, palletCount int) string {
	switch {
	case totalWeightLbs > 15000 || palletCount > 10:
		return model.ShipFullTL
	case totalWeightLbs > 10000 || palletCount > 6:
		return model.ShipPartialTL
	default:
		return model.ShipLTL
	}
}
