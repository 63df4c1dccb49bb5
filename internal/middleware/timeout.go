package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/dto"
	"github.com/velofab/pallet-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is returned when no translator is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default request timeout configuration.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that caps request processing time. The handler
// runs in its own goroutine; when the deadline passes first, the client gets
// a 504 and the handler's context is cancelled.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// finished guards against writing a timeout response when the
		// handler completed between ctx.Done firing and the lock.
		var mu sync.Mutex
		var finished bool
		done := make(chan struct{})

		go func() {
			defer func() {
				recover()
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}
			writeTimeoutResponse(c, cfg)
		}
	}
}

func writeTimeoutResponse(c *gin.Context, cfg TimeoutConfig) {
	message := cfg.ErrorMessage
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}

	errorResp := dto.NewError(dto.ErrCodeTimeout, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
}

// TimeoutWithDuration creates a timeout middleware with a specific duration
// and the default error message.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
