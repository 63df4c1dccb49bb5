package http

import (
	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/middleware"
	"github.com/velofab/pallet-service/internal/service"
)

// PackRoutes handles pallet configuration route registration.
type PackRoutes struct {
	handler           *Handler
	validationHandler *ValidationHandler
	overridesHandler  *OverridesHandler
}

// NewPackRoutes creates a new PackRoutes instance.
func NewPackRoutes(
	packingService service.PackingService,
	validationService service.ValidationService,
	overridesService service.OverridesService,
) *PackRoutes {
	r := &PackRoutes{
		handler: NewHandler(packingService),
	}
	if validationService != nil {
		r.validationHandler = NewValidationHandler(validationService)
	}
	if overridesService != nil {
		r.overridesHandler = NewOverridesHandler(overridesService)
	}
	return r
}

// RegisterPublicRoutes registers pallet routes without authentication.
func (r *PackRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/pack", r.handler.Pack)

	if r.validationHandler != nil {
		rg.POST("/validate", r.validationHandler.Validate)
		rg.GET("/validate", r.validationHandler.List)
		rg.GET("/validate/:id", r.validationHandler.Get)
	}

	if r.overridesHandler != nil {
		rg.GET("/overrides", r.overridesHandler.List)
		rg.GET("/overrides/:sku", r.overridesHandler.Get)
		rg.PUT("/overrides/:sku", r.overridesHandler.Put)
		rg.DELETE("/overrides/:sku", r.overridesHandler.Delete)
	}
}

// RegisterProtectedRoutes registers pallet routes behind JWT authentication.
// Override writes additionally require the admin role.
func (r *PackRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.POST("/pack", r.handler.Pack)

	if r.validationHandler != nil {
		protected.POST("/validate", r.validationHandler.Validate)
		protected.GET("/validate", r.validationHandler.List)
		protected.GET("/validate/:id", r.validationHandler.Get)
	}

	if r.overridesHandler != nil {
		adminOnly := middleware.RequireRole(model.RoleAdmin)
		protected.GET("/overrides", r.overridesHandler.List)
		protected.GET("/overrides/:sku", r.overridesHandler.Get)
		protected.PUT("/overrides/:sku", adminOnly, r.overridesHandler.Put)
		protected.DELETE("/overrides/:sku", adminOnly, r.overridesHandler.Delete)
	}
}

// GetHandler returns the underlying pack handler.
func (r *PackRoutes) GetHandler() *Handler {
	return r.handler
}
