// Package model defines the core domain entities for the pallet service.
package model

// CartonDims describes a packaged carton: planar length and width, vertical
// height as the carton ships, and unit weight. All values are inches and pounds.
type CartonDims struct {
	LengthIn  float64 `json:"length_in" bson:"length_in"`
	WidthIn   float64 `json:"width_in" bson:"width_in"`
	HeightIn  float64 `json:"height_in" bson:"height_in"`
	WeightLbs float64 `json:"weight_lbs" bson:"weight_lbs"`
}

// Valid reports whether all four extents are strictly positive.
func (d CartonDims) Valid() bool {
	return d.LengthIn > 0 && d.WidthIn > 0 && d.HeightIn > 0 && d.WeightLbs > 0
}

// FootprintArea returns the planar area in square inches.
func (d CartonDims) FootprintArea() float64 {
	return d.LengthIn * d.WidthIn
}

// Volume returns the carton volume in cubic inches.
func (d CartonDims) Volume() float64 {
	return d.LengthIn * d.WidthIn * d.HeightIn
}

// LongestTwo returns the two largest extents of the carton, largest first.
func (d CartonDims) LongestTwo() (float64, float64) {
	a, b, c := d.LengthIn, d.WidthIn, d.HeightIn
	if a < b {
		a, b = b, a
	}
	if b < c {
		b, c = c, b
	}
	if a < b {
		a, b = b, a
	}
	_ = c
	return a, b
}
