package model

import "math"

const (
	// PalletTareLbs is the weight of the empty pallet base added to every
	// pallet's total weight.
	PalletTareLbs = 40.0

	// DeckThicknessIn is the vertical extent of the pallet deck, added to the
	// stack height when reporting overall pallet dimensions.
	DeckThicknessIn = 5.5
)

// Placement is a single carton placed on a single pallet. Coordinates are
// inches from the pallet's bottom-front-left corner; L/W/H are the placed
// extents, which may be a rotation of the carton's natural dimensions.
type Placement struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Z             float64 `json:"z"`
	L             float64 `json:"l"`
	W             float64 `json:"w"`
	H             float64 `json:"h"`
	SKU           string  `json:"sku"`
	DisplayName   string  `json:"display_name"`
	OrientationID int     `json:"orientation_id"`
	WeightLbs     float64 `json:"-"`
	LineIndex     int     `json:"-"`
	InstanceIndex int     `json:"-"`
	Unknown       bool    `json:"-"`
}

// Top returns the height of the placement's upper face.
func (p Placement) Top() float64 {
	return p.Y + p.H
}

// Pallet is one physical pallet (or fixed crate) with its placements.
// The exported fields mirror the wire shape; the working fields carry the
// packing constraints and are finalized before a result is returned.
type Pallet struct {
	ID           int            `json:"id"`
	Group        PackagingGroup `json:"group"`
	Footprint    [2]float64     `json:"footprint"`
	Dims         [3]float64     `json:"dims"`
	Weight       float64        `json:"weight"`
	CubicFeet    float64        `json:"cubic_feet"`
	Density      float64        `json:"density"`
	FreightClass float64        `json:"freight_class"`
	Placements   []Placement    `json:"placements"`
	SourceTag    string         `json:"source_tag,omitempty"`
	PackingNote  string         `json:"packing_note,omitempty"`
	Oversized    bool           `json:"oversized,omitempty"`

	Length    float64 `json:"-"`
	Width     float64 `json:"-"`
	MaxHeight float64 `json:"-"`
	MaxWeight float64 `json:"-"`
}

// ItemWeightLbs returns the summed weight of all placements, excluding tare.
func (p *Pallet) ItemWeightLbs() float64 {
	total := 0.0
	for i := range p.Placements {
		total += p.Placements[i].WeightLbs
	}
	return total
}

// TotalWeightLbs returns the placed weight plus the pallet tare.
func (p *Pallet) TotalWeightLbs() float64 {
	return p.ItemWeightLbs() + PalletTareLbs
}

// StackHeightIn returns the highest placement top on the pallet.
func (p *Pallet) StackHeightIn() float64 {
	h := 0.0
	for i := range p.Placements {
		if top := p.Placements[i].Top(); top > h {
			h = top
		}
	}
	return h
}

// Finalize computes the derived wire fields from the current placements.
// Freight class is assigned separately by the classifier.
func (p *Pallet) Finalize() {
	p.Footprint = [2]float64{p.Length, p.Width}
	overall := math.Ceil(p.StackHeightIn() + DeckThicknessIn)
	p.Dims = [3]float64{p.Length, p.Width, overall}
	p.Weight = round1(p.TotalWeightLbs())
	cubicIn := p.Length * p.Width * overall
	p.CubicFeet = round1(cubicIn / 1728.0)
	if p.CubicFeet > 0 {
		p.Density = round1(p.Weight / p.CubicFeet)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// OversizedItem reports an item that exceeded every standard pallet footprint.
type OversizedItem struct {
	SKU    string     `json:"sku"`
	Dims   CartonDims `json:"dims"`
	Reason string     `json:"reason"`
}

// ParcelPackage is one parcel-shippable carton in a parcel order.
type ParcelPackage struct {
	SKU       string     `json:"sku"`
	Dims      CartonDims `json:"dims"`
	WeightLbs float64    `json:"weight_lbs"`
}

// ParcelSummary describes an order that ships entirely as parcel packages.
type ParcelSummary struct {
	Count    int             `json:"count"`
	Packages []ParcelPackage `json:"packages"`
}

// Shipping method literals reported on a PackingResult.
const (
	ShipParcel    = "Parcel"
	ShipLTL       = "LTL"
	ShipPartialTL = "Partial TL"
	ShipFullTL    = "Full Truckload"
)

// PackingResult is the complete outcome of configuring one order.
type PackingResult struct {
	Pallets         []Pallet        `json:"pallets"`
	TotalPallets    int             `json:"total_pallets"`
	TotalWeight     float64         `json:"total_weight"`
	TotalCubicFeet  float64         `json:"total_cubic_feet"`
	TotalItems      int             `json:"total_items"`
	ShippingMethod  string          `json:"shipping_method"`
	ParcelPackages  *ParcelSummary  `json:"parcel_packages,omitempty"`
	HasUnknownItems bool            `json:"has_unknown_items"`
	OversizedItems  []OversizedItem `json:"oversized_items"`
}
