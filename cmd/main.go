// Package main is the entry point for the pallet-service application.
//
// @title           Pallet Service API
// @version         1.0.0
// @description     API for computing pallet configurations for bike and skate parking hardware orders.
//
//	The service resolves order lines against the carton catalog, packs them onto pallets by
//	compatibility group, assigns freight classes and reconciles predictions against dock actuals.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/velofab/pallet-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Pallets
// @tag.description Pallet configuration operations
//
// @tag.name        Validation
// @tag.description Shipment validation and reconciliation endpoints
//
// @tag.name        Overrides
// @tag.description Temporary carton dimension overrides
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/velofab/pallet-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
