// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/catalog"
	"github.com/velofab/pallet-service/internal/service"
	"github.com/velofab/pallet-service/internal/validation"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packing    service.PackingService
	Overrides  service.OverridesService
	Validation service.ValidationService
}

// InitializeServices initializes business logic services. The overrides and
// validation services are only wired when their MongoDB-backed repositories
// are available; packing always works, falling back to catalog dimensions.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{}

	var overridesService service.OverridesService
	if dbComponents != nil && dbComponents.OverridesRepo != nil {
		overridesService = service.NewOverridesService(dbComponents.OverridesRepo)
		components.Overrides = overridesService
	}

	packingOpts := []service.Option{
		service.WithCatalog(catalog.Default()),
		service.WithLogger(log.Logger),
	}
	if overridesService != nil {
		packingOpts = append(packingOpts, service.WithOverrideSource(overridesService))
	}
	components.Packing = service.NewPackingService(packingOpts...)

	if dbComponents != nil && dbComponents.ValidationsRepo != nil && cfg.OrderSystem.BaseURL != "" {
		fetcher := service.NewHTTPOrderFetcher(cfg.OrderSystem.BaseURL, cfg.OrderSystem.APIKey, cfg.OrderSystem.Timeout)

		notifiers := []validation.Notifier{service.NewLogNotifier(log.Logger)}
		if cfg.Validation.WebhookURL != "" {
			notifiers = append(notifiers, service.NewWebhookNotifier(cfg.Validation.WebhookURL, cfg.Validation.WebhookTimeout))
		}

		components.Validation = service.NewValidationService(
			fetcher,
			dbComponents.ValidationsRepo,
			overridesService,
			notifiers,
			log.Logger,
		)
	} else if cfg.OrderSystem.BaseURL == "" {
		log.Info().Msg("ORDER_SYSTEM_URL not set - shipment validation endpoint disabled")
	}

	return components
}
