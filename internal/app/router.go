// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/http"
	"github.com/velofab/pallet-service/internal/repository"
	"github.com/velofab/pallet-service/internal/service"
)

// mongoChecker probes MongoDB for the readiness endpoint.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.Ping(ctx)
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.OverridesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_overrides", dbComponents.OverridesCircuitBreaker)
		}
		if dbComponents.ValidationsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_validations", dbComponents.ValidationsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil && cfg.Auth.Enabled {
		authService = service.NewAuthService(dbComponents.UserRepo, cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		PackingService:    serviceComponents.Packing,
		ValidationService: serviceComponents.Validation,
		OverridesService:  serviceComponents.Overrides,
		AuthService:       authService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
