package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velofab/pallet-service/internal/domain/model"
)

func TestFreightClass(t *testing.T) {
	tests := []struct {
		name     string
		density  float64
		expected float64
	}{
		{name: "very dense", density: 62.4, expected: 50},
		{name: "boundary 50", density: 50, expected: 50},
		{name: "just under 50", density: 49.9, expected: 55},
		{name: "mid table", density: 14, expected: 77.5},
		{name: "boundary 9", density: 9, expected: 100},
		{name: "just under 9", density: 8.9, expected: 110},
		{name: "boundary 1", density: 1, expected: 400},
		{name: "below 1", density: 0.5, expected: 500},
		{name: "zero density", density: 0, expected: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FreightClass(tt.density))
		})
	}
}

func TestParcelEligible(t *testing.T) {
	small := func(weight float64) model.Item {
		return model.Item{
			SKU:  "SIK60",
			Dims: model.CartonDims{LengthIn: 6, WidthIn: 6, HeightIn: 6, WeightLbs: weight},
		}
	}

	tests := []struct {
		name     string
		items    []model.Item
		expected bool
	}{
		{
			name:     "empty order",
			items:    nil,
			expected: false,
		},
		{
			name:     "single small item",
			items:    []model.Item{small(10)},
			expected: true,
		},
		{
			name: "item over weight limit",
			items: []model.Item{
				{Dims: model.CartonDims{LengthIn: 10, WidthIn: 10, HeightIn: 10, WeightLbs: 51}},
			},
			expected: false,
		},
		{
			name: "item at weight limit",
			items: []model.Item{
				{Dims: model.CartonDims{LengthIn: 10, WidthIn: 10, HeightIn: 10, WeightLbs: 50}},
			},
			expected: true,
		},
		{
			name: "item over volume limit",
			items: []model.Item{
				{Dims: model.CartonDims{LengthIn: 13, WidthIn: 12, HeightIn: 12, WeightLbs: 20}},
			},
			expected: false,
		},
		{
			name: "item at volume limit",
			items: []model.Item{
				{Dims: model.CartonDims{LengthIn: 12, WidthIn: 12, HeightIn: 12, WeightLbs: 20}},
			},
			expected: true,
		},
		{
			name:     "total weight at ceiling",
			items:    []model.Item{small(50), small(50), small(50)},
			expected: false,
		},
		{
			name:     "total weight under ceiling",
			items:    []model.Item{small(50), small(50), small(49.9)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParcelEligible(tt.items))
		})
	}
}

func TestShippingMode(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		pallets  int
		expected string
	}{
		{name: "small order ships ltl", weight: 900, pallets: 1, expected: model.ShipLTL},
		{name: "six pallets still ltl", weight: 9000, pallets: 6, expected: model.ShipLTL},
		{name: "seven pallets partial tl", weight: 9000, pallets: 7, expected: model.ShipPartialTL},
		{name: "weight over 10k partial tl", weight: 10001, pallets: 5, expected: model.ShipPartialTL},
		{name: "weight over 15k full tl", weight: 15001, pallets: 5, expected: model.ShipFullTL},
		{name: "eleven pallets full tl", weight: 9000, pallets: 11, expected: model.ShipFullTL},
		{name: "boundary 15000 stays partial", weight: 15000, pallets: 10, expected: model.ShipPartialTL},
		{name: "boundary 10000 six pallets ltl", weight: 10000, pallets: 6, expected: model.ShipLTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShippingMode(tt.weight, tt.pallets))
		})
	}
}
