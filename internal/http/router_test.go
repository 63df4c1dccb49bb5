package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/service"
)

func testRouterAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	}
}

func TestNewRouter(t *testing.T) {
	healthHandler := NewHealthHandler()
	packingService := service.NewPackingService()

	tests := []struct {
		name string
		cfg  RouterConfig
		test func(*testing.T, *gin.Engine)
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with API key auth enabled",
			cfg: RouterConfig{
				RateLimit:      100,
				RateWindow:     time.Minute,
				EnableAuth:     true,
				APIKeys:        map[string]bool{"test-key": true},
				PackingService: packingService,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)

				// Without a key the API rejects the request
				req := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name: "creates router with rate limiting",
			cfg: RouterConfig{
				RateLimit:      5,
				RateWindow:     time.Second,
				PackingService: packingService,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router without packing service",
			cfg: RouterConfig{
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			test: func(t *testing.T, router *gin.Engine) {
				req := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				assert.Equal(t, http.StatusNotFound, w.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(healthHandler, tt.cfg)
			if tt.test != nil {
				tt.test(t, router)
			}
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	healthHandler := NewHealthHandler()
	cfg := DefaultRouterConfig()
	cfg.PackingService = service.NewPackingService()
	router := NewRouter(healthHandler, cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pack endpoint",
			method:         http.MethodPost,
			path:           "/api/pack",
			expectedStatus: http.StatusBadRequest, // Missing body
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_AuthModeRegistersAuthRoutes(t *testing.T) {
	healthHandler := NewHealthHandler()
	cfg := DefaultRouterConfig()
	cfg.PackingService = service.NewPackingService()
	cfg.AuthService = service.NewAuthService(nil, testRouterAuthConfig())
	router := NewRouter(healthHandler, cfg)

	// Auth routes exist
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	// Business routes require a token
	req2 := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}
