package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velofab/pallet-service/internal/logger"
	"github.com/velofab/pallet-service/internal/service"
)

// RequestLogger returns a middleware that emits a structured log line per
// request and, when a logging service is configured, persists the entry
// without blocking the response.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := auditEntry(c, levelForStatus(statusCode), "", "HTTP request", nil)
		entry.StatusCode = statusCode
		entry.Duration = latency.Milliseconds()

		storeAsync(loggingService, entry)
	}
}

// levelForStatus maps an HTTP status code to a stored log level.
func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
