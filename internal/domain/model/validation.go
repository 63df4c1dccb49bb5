package model

import "time"

// LinePrediction is the rule-of-thumb pallet estimate for one resolved line.
type LinePrediction struct {
	SKU            string         `json:"sku" bson:"sku"`
	Group          PackagingGroup `json:"group" bson:"group"`
	Qty            int            `json:"qty" bson:"qty"`
	UnitsPerPallet int            `json:"units_per_pallet" bson:"units_per_pallet"`
	Pallets        int            `json:"pallets" bson:"pallets"`
	WeightLbs      float64        `json:"weight_lbs" bson:"weight_lbs"`
}

// ActualPallet is one real pallet reported back from the dock.
type ActualPallet struct {
	WeightLbs float64 `json:"weight" bson:"weight"`
	LengthIn  float64 `json:"length" bson:"length"`
	WidthIn   float64 `json:"width" bson:"width"`
	HeightIn  float64 `json:"height" bson:"height"`
}

// Variance compares the prediction against the recorded actuals.
// PalletDelta is predicted minus actual.
type Variance struct {
	PalletDelta int     `json:"pallet_delta" bson:"pallet_delta"`
	WeightDelta float64 `json:"weight_delta" bson:"weight_delta"`
	WithinOne   bool    `json:"within_one" bson:"within_one"`
	Exact       bool    `json:"exact" bson:"exact"`
}

// ValidationRecord is the write-once reconciliation of a predicted shipment
// against its actual pallet counts and weights.
type ValidationRecord struct {
	ReferenceOrderID   string           `json:"reference_order_id" bson:"reference_order_id"`
	PredictedPallets   int              `json:"predicted_pallets" bson:"predicted_pallets"`
	PredictedWeightLbs float64          `json:"predicted_weight_lbs" bson:"predicted_weight_lbs"`
	PredictedBreakdown []LinePrediction `json:"predicted_breakdown" bson:"predicted_breakdown"`
	ActualPallets      int              `json:"actual_pallets" bson:"actual_pallets"`
	ActualWeightLbs    float64          `json:"actual_weight_lbs" bson:"actual_weight_lbs"`
	ActualPalletDims   []ActualPallet   `json:"actual_pallet_dims" bson:"actual_pallet_dims"`
	ValidatedBy        string           `json:"validated_by" bson:"validated_by"`
	Notes              string           `json:"notes,omitempty" bson:"notes,omitempty"`
	Variance           Variance         `json:"variance" bson:"variance"`
	Timestamp          time.Time        `json:"timestamp" bson:"timestamp"`
}
