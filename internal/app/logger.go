// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/velofab/pallet-service/internal/logger"
)

const defaultLogLevel = "info"

// InitializeLogger configures the global logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = defaultLogLevel
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
