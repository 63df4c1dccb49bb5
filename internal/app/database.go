// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/circuitbreaker"
	"github.com/velofab/pallet-service/internal/repository"
	"github.com/velofab/pallet-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                        *repository.MongoDB
	OverridesRepo             repository.OverridesRepositoryInterface
	ValidationsRepo           repository.ValidationsRepositoryInterface
	LoggingService            service.LoggingService
	OverridesCircuitBreaker   *circuitbreaker.CircuitBreaker
	ValidationsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
	UserRepo                  repository.UserRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	overridesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-overrides",
	})

	validationsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-validations",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	overridesRepo := repository.NewOverridesRepository(db)
	overridesRepoWithCB := repository.NewOverridesRepositoryWithCircuitBreaker(overridesRepo, overridesCB)

	validationsRepo := repository.NewValidationsRepository(db)
	validationsRepoWithCB := repository.NewValidationsRepositoryWithCircuitBreaker(validationsRepo, validationsCB)

	userRepo := repository.NewUserRepository(db.Database)

	return &DatabaseComponents{
		DB:                        db,
		OverridesRepo:             overridesRepoWithCB,
		ValidationsRepo:           validationsRepoWithCB,
		LoggingService:            loggingService,
		OverridesCircuitBreaker:   overridesCB,
		ValidationsCircuitBreaker: validationsCB,
		LogsCircuitBreaker:        logsCB,
		UserRepo:                  userRepo,
	}
}
