package app

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velofab/pallet-service/config"
)

func routePaths(router *gin.Engine) map[string]bool {
	paths := make(map[string]bool)
	for _, route := range router.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	return paths
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		wantRoutes []string
	}{
		{
			name: "default config exposes pack and health routes",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			wantRoutes: []string{"POST /api/pack", "GET /healthz", "GET /readyz"},
		},
		{
			name: "API key auth keeps pack route registered",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			wantRoutes: []string{"POST /api/pack"},
		},
		{
			name: "without database the persistence routes are absent",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
			wantRoutes: []string{"POST /api/pack"},
		},
		{
			name: "without order system the pack route still registers",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				OrderSystem: config.OrderSystemConfig{
					BaseURL: "",
				},
			},
			wantRoutes: []string{"POST /api/pack"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			require.NotNil(t, router)

			paths := routePaths(router)
			for _, want := range tt.wantRoutes {
				assert.True(t, paths[want], "expected route %s", want)
			}
		})
	}
}

func TestInitializeApp_NoDatabaseOmitsValidationRoutes(t *testing.T) {
	router := InitializeApp(config.Config{
		Server: config.ServerConfig{
			Port: "8080",
		},
		Database: config.DatabaseConfig{
			Enabled: false,
		},
	})
	require.NotNil(t, router)

	paths := routePaths(router)
	assert.False(t, paths["POST /api/validate"], "validation routes need a database")
	assert.False(t, paths["PUT /api/overrides/:sku"], "override writes need a database")
}
