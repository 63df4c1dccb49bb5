package model

// Product is one catalog entry: canonical carton data for a SKU.
type Product struct {
	SKU         string         `json:"sku"`
	DisplayName string         `json:"display_name"`
	Family      string         `json:"family"`
	Packaged    *CartonDims    `json:"packaged,omitempty"`
	Group       PackagingGroup `json:"packaging_group"`
}

// OrderLine is one raw line of an incoming order, before resolution.
type OrderLine struct {
	SKU         string `json:"sku"`
	Qty         int    `json:"qty"`
	Description string `json:"description,omitempty"`
}

// Item is a single carton instance to be packed. Each resolved order line
// expands into Qty items; identity is the (LineIndex, InstanceIndex) pair and
// items never reference one another.
type Item struct {
	LineIndex     int            `json:"-"`
	InstanceIndex int            `json:"-"`
	SKU           string         `json:"sku"`
	DisplayName   string         `json:"display_name"`
	Dims          CartonDims     `json:"dims"`
	Group         PackagingGroup `json:"group"`
	Unknown       bool           `json:"unknown,omitempty"`
	HasOverride   bool           `json:"has_override,omitempty"`
}

// WeightLbs returns the unit weight of the item's carton.
func (it Item) WeightLbs() float64 {
	return it.Dims.WeightLbs
}
