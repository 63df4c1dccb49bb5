package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/dto"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/i18n"
	"github.com/velofab/pallet-service/internal/middleware"
	"github.com/velofab/pallet-service/internal/service"
	"github.com/velofab/pallet-service/internal/validation"
)

// ValidationHandler provides HTTP handlers for shipment validation routes.
type ValidationHandler struct {
	validationService service.ValidationService
}

// NewValidationHandler creates a new ValidationHandler instance.
func NewValidationHandler(validationService service.ValidationService) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
	}
}

// Validate handles POST /api/validate requests.
//
// @Summary      Reconcile a shipment against dock actuals
// @Description  Fetches the referenced order from the order system, predicts its pallet count with the rule-of-thumb tables, compares against the reported actuals and writes the variance record. Records are write-once per reference order id.
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateOrderRequest true "Dock-reported actuals"
// @Success      201 {object} dto.SuccessResponse "Validation record"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown reference order"
// @Failure      409 {object} dto.ErrorResponse "Conflict - order already validated"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - order system unavailable"
// @Security     BearerAuth
// @Router       /api/validate [post]
func (h *ValidationHandler) Validate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ValidateOrderRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	actuals := make([]model.ActualPallet, 0, len(req.ActualPallets))
	for _, p := range req.ActualPallets {
		actuals = append(actuals, model.ActualPallet{
			WeightLbs: p.WeightLbs,
			LengthIn:  p.LengthIn,
			WidthIn:   p.WidthIn,
			HeightIn:  p.HeightIn,
		})
	}

	middleware.AuditLog(auditLogger(c), c, "validate", "Shipment validation requested", map[string]interface{}{
		"reference_order_id": req.ReferenceOrderID,
		"actual_pallets":     len(actuals),
	})

	record, err := h.validationService.Validate(c.Request.Context(), validation.Request{
		ReferenceOrderID: req.ReferenceOrderID,
		ActualPallets:    actuals,
		ValidatedBy:      req.ValidatedBy,
		Notes:            req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrOrderNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
		case errors.Is(err, validation.ErrValidationExists):
			builder.Error(http.StatusConflict, i18n.ErrKeyValidationExists, err)
		case errors.Is(err, validation.ErrOrderSystem):
			builder.Error(http.StatusBadGateway, i18n.ErrKeyOrderSystemUnavailable, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(record)
}

// Get handles GET /api/validate/:id requests.
//
// @Summary      Fetch a recorded validation
// @Description  Returns the validation record for a reference order id.
// @Tags         Validation
// @Produce      json
// @Param        id path string true "Reference order id"
// @Success      200 {object} dto.SuccessResponse "Validation record"
// @Failure      404 {object} dto.ErrorResponse "Not found - no validation for order"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/validate/{id} [get]
func (h *ValidationHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	referenceOrderID := c.Param("id")
	record, err := h.validationService.Get(c.Request.Context(), referenceOrderID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if record == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, errors.New("no validation recorded for order "+referenceOrderID))
		return
	}

	builder.SuccessOK(record)
}

// List handles GET /api/validate requests.
//
// @Summary      List recorded validations
// @Description  Returns the most recent validation records, newest first.
// @Tags         Validation
// @Produce      json
// @Param        limit query int false "Maximum number of records" default(50)
// @Success      200 {object} dto.SuccessResponse "Validation records"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/validate [get]
func (h *ValidationHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.validationService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(records)
}
