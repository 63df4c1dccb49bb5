package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/dto"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/i18n"
	"github.com/velofab/pallet-service/internal/middleware"
	"github.com/velofab/pallet-service/internal/service"
)

// OverridesHandler provides HTTP handlers for dimension override routes.
type OverridesHandler struct {
	overridesService service.OverridesService
}

// NewOverridesHandler creates a new OverridesHandler instance.
func NewOverridesHandler(overridesService service.OverridesService) *OverridesHandler {
	return &OverridesHandler{
		overridesService: overridesService,
	}
}

// List handles GET /api/overrides requests.
//
// @Summary      List active dimension overrides
// @Description  Returns all non-expired dimension overrides, sorted by SKU.
// @Tags         Overrides
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active overrides"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - override store not configured"
// @Security     BearerAuth
// @Router       /api/overrides [get]
func (h *OverridesHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	overrides, err := h.overridesService.List(c.Request.Context())
	if err != nil {
		h.serviceError(builder, err)
		return
	}

	builder.SuccessOK(overrides)
}

// Get handles GET /api/overrides/:sku requests.
//
// @Summary      Fetch the override for a SKU
// @Description  Returns the active dimension override for a SKU, if any.
// @Tags         Overrides
// @Produce      json
// @Param        sku path string true "SKU"
// @Success      200 {object} dto.SuccessResponse "Override"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active override for SKU"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - override store not configured"
// @Security     BearerAuth
// @Router       /api/overrides/{sku} [get]
func (h *OverridesHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sku := c.Param("sku")
	override, err := h.overridesService.Get(c.Request.Context(), sku)
	if err != nil {
		h.serviceError(builder, err)
		return
	}
	if override == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, errors.New("no active override for sku "+sku))
		return
	}

	builder.SuccessOK(override)
}

// Put handles PUT /api/overrides/:sku requests.
//
// @Summary      Set a dimension override for a SKU
// @Description  Upserts a temporary carton dimension override. The override shadows the catalog for packing and validation until it expires; writing again restarts the expiry clock.
// @Tags         Overrides
// @Accept       json
// @Produce      json
// @Param        sku path string true "SKU"
// @Param        request body dto.UpsertOverrideRequest true "Override dimensions"
// @Success      200 {object} dto.SuccessResponse "Stored override"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid dimensions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - override store not configured"
// @Security     BearerAuth
// @Router       /api/overrides/{sku} [put]
func (h *OverridesHandler) Put(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpsertOverrideRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	sku := c.Param("sku")
	createdBy := req.CreatedBy
	if createdBy == "" {
		if email, exists := c.Get("user_email"); exists {
			if s, ok := email.(string); ok {
				createdBy = s
			}
		}
	}

	dims := model.CartonDims{
		LengthIn:  req.LengthIn,
		WidthIn:   req.WidthIn,
		HeightIn:  req.HeightIn,
		WeightLbs: req.WeightLbs,
	}

	override, err := h.overridesService.Put(c.Request.Context(), sku, dims, createdBy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDims) {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
			return
		}
		h.serviceError(builder, err)
		return
	}

	middleware.AuditLog(auditLogger(c), c, "override_set", "Dimension override stored", map[string]interface{}{
		"sku":        override.SKU,
		"created_by": createdBy,
	})

	builder.SuccessOK(override)
}

// Delete handles DELETE /api/overrides/:sku requests.
//
// @Summary      Clear the override for a SKU
// @Description  Removes the dimension override so the catalog entry applies again.
// @Tags         Overrides
// @Produce      json
// @Param        sku path string true "SKU"
// @Success      200 {object} dto.SuccessResponse "Override cleared"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - override store not configured"
// @Security     BearerAuth
// @Router       /api/overrides/{sku} [delete]
func (h *OverridesHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sku := c.Param("sku")
	if err := h.overridesService.Clear(c.Request.Context(), sku); err != nil {
		h.serviceError(builder, err)
		return
	}

	middleware.AuditLog(auditLogger(c), c, "override_cleared", "Dimension override cleared", map[string]interface{}{
		"sku": sku,
	})

	builder.SuccessOK(map[string]string{"sku": sku, "status": "cleared"})
}

func (h *OverridesHandler) serviceError(builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
