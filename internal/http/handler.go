package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/dto"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/i18n"
	"github.com/velofab/pallet-service/internal/middleware"
	"github.com/velofab/pallet-service/internal/packing"
	"github.com/velofab/pallet-service/internal/service"
)

// Handler provides HTTP handlers for pallet configuration routes.
type Handler struct {
	packingService service.PackingService
}

// auditLogger returns the logging service the router attached to the
// request, or nil when persistence is disabled. The audit helpers treat a
// nil service as a no-op.
func auditLogger(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// NewHandler creates a new Handler instance.
func NewHandler(packingService service.PackingService) *Handler {
	return &Handler{
		packingService: packingService,
	}
}

// Pack handles POST /api/pack requests.
//
// @Summary      Compute pallet configuration for an order
// @Description  Resolves the order lines against the carton catalog, expands Double Docker kits into component crates, routes oversized items to dedicated pallets and packs the rest onto standard pallets by compatibility group. The response carries per-pallet placements, freight classes and the recommended shipping mode.
// @Tags         Pallets
// @Accept       json
// @Produce      json
// @Param        request body dto.PackRequest true "Order lines to pack"
// @Success      200 {object} dto.SuccessResponse "Pallet configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty order"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pack [post]
func (h *Handler) Pack(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationOrderLines, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, model.OrderLine{
			SKU:         line.SKU,
			Qty:         line.Qty,
			Description: line.Description,
		})
	}

	middleware.AuditLog(auditLogger(c), c, "pack", "Pallet configuration requested", map[string]interface{}{
		"line_count": len(lines),
	})

	result, err := h.packingService.Pack(c.Request.Context(), lines)
	if err != nil {
		if errors.Is(err, packing.ErrOrderEmpty) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyOrderEmpty, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(result)
}
