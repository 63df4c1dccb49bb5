// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// OrderLineRequest is one raw order line in a pack request.
type OrderLineRequest struct {
	// SKU is the catalog part number for the line.
	SKU string `json:"sku" binding:"required" example:"VR2"`
	// Qty is the number of units ordered. Must be greater than 0.
	Qty int `json:"qty" binding:"required,gt=0" example:"4" minimum:"1"`
	// Description is the free-text line description from the order system.
	Description string `json:"description,omitempty" example:"Varsity Rack, 2 bikes"`
} // @name OrderLineRequest

// PackRequest represents the JSON request body for the pallet packing endpoint.
//
// The Lines field is required and must contain at least one order line with a
// positive quantity. Validation is performed using gin's binding tags.
//
// @Description Request to compute a pallet configuration for an order
// @Example {"lines": [{"sku": "VR2", "qty": 4}, {"sku": "DD4", "qty": 1, "description": "Double Docker, 4 bikes"}]}
type PackRequest struct {
	// Lines is the list of raw order lines to pack.
	Lines []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
} // @name PackRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidOrderLines is returned when the lines field is missing or empty.
	ErrInvalidOrderLines = &ValidationError{
		Field:   "lines",
		Message: "at least one order line is required",
	}
	// ErrInvalidLineQty is returned when a line quantity is not positive.
	ErrInvalidLineQty = &ValidationError{
		Field:   "lines.qty",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *PackRequest) Validate() error {
	if len(r.Lines) == 0 {
		return ErrInvalidOrderLines
	}
	for _, line := range r.Lines {
		if line.Qty <= 0 {
			return ErrInvalidLineQty
		}
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ActualPalletRequest is one real pallet reported back from the dock.
type ActualPalletRequest struct {
	// WeightLbs is the scale weight of the loaded pallet.
	WeightLbs float64 `json:"weight" binding:"required,gt=0" example:"1240"`
	// LengthIn is the pallet footprint length in inches.
	LengthIn float64 `json:"length,omitempty" example:"86"`
	// WidthIn is the pallet footprint width in inches.
	WidthIn float64 `json:"width,omitempty" example:"48"`
	// HeightIn is the loaded pallet height in inches.
	HeightIn float64 `json:"height,omitempty" example:"52"`
} // @name ActualPalletRequest

// ValidateOrderRequest represents the JSON request body for the shipment
// validation endpoint.
//
// @Description Request to reconcile an order's prediction against dock actuals
// @Example {"reference_order_id": "SO-10234", "actual_pallets": [{"weight": 1240}], "validated_by": "dock-3"}
type ValidateOrderRequest struct {
	// ReferenceOrderID is the order system identifier to validate against.
	ReferenceOrderID string `json:"reference_order_id" binding:"required" example:"SO-10234"`
	// ActualPallets lists the pallets reported from the dock.
	ActualPallets []ActualPalletRequest `json:"actual_pallets" binding:"required,min=1,dive"`
	// ValidatedBy identifies who recorded the actuals.
	ValidatedBy string `json:"validated_by,omitempty" example:"dock-3"`
	// Notes holds free-text remarks from the dock.
	Notes string `json:"notes,omitempty"`
} // @name ValidateOrderRequest

// Validate performs custom validation on the request.
func (r *ValidateOrderRequest) Validate() error {
	if r.ReferenceOrderID == "" {
		return &ValidationError{
			Field:   "reference_order_id",
			Message: "reference order id is required",
		}
	}
	if len(r.ActualPallets) == 0 {
		return &ValidationError{
			Field:   "actual_pallets",
			Message: "at least one actual pallet is required",
		}
	}
	for _, p := range r.ActualPallets {
		if p.WeightLbs <= 0 {
			return &ValidationError{
				Field:   "actual_pallets.weight",
				Message: "must be a positive number",
			}
		}
	}
	return nil
}

// UpsertOverrideRequest represents the JSON request body for setting a
// temporary dimension override on a SKU.
type UpsertOverrideRequest struct {
	// LengthIn is the carton length in inches.
	LengthIn float64 `json:"length" binding:"required,gt=0" example:"62"`
	// WidthIn is the carton width in inches.
	WidthIn float64 `json:"width" binding:"required,gt=0" example:"30"`
	// HeightIn is the carton height in inches.
	HeightIn float64 `json:"height" binding:"required,gt=0" example:"9"`
	// WeightLbs is the carton weight in pounds.
	WeightLbs float64 `json:"weight" binding:"required,gt=0" example:"78"`
	// CreatedBy is the identifier of who created this override.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpsertOverrideRequest

// Validate performs custom validation on the request.
func (r *UpsertOverrideRequest) Validate() error {
	if r.LengthIn <= 0 || r.WidthIn <= 0 || r.HeightIn <= 0 || r.WeightLbs <= 0 {
		return &ValidationError{
			Field:   "dims",
			Message: "length, width, height and weight must be positive",
		}
	}
	return nil
}
