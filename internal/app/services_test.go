//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/mocks"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Config
		dbComponents *DatabaseComponents
		validate     func(*testing.T, *ServiceComponents)
	}{
		{
			name: "packing always available without database",
			cfg:  config.Config{},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Packing)
				assert.Nil(t, components.Overrides)
				assert.Nil(t, components.Validation)
			},
		},
		{
			name: "overrides service wired when repository available",
			cfg:  config.Config{},
			dbComponents: &DatabaseComponents{
				OverridesRepo: new(mocks.MockOverridesRepositoryInterface),
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Packing)
				assert.NotNil(t, components.Overrides)
				assert.Nil(t, components.Validation)
			},
		},
		{
			name: "validation disabled without order system url",
			cfg:  config.Config{},
			dbComponents: &DatabaseComponents{
				ValidationsRepo: new(mocks.MockValidationsRepositoryInterface),
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Packing)
				assert.Nil(t, components.Validation)
			},
		},
		{
			name: "validation wired when order system configured",
			cfg: config.Config{
				OrderSystem: config.OrderSystemConfig{
					BaseURL: "http://orders.internal",
					APIKey:  "key",
					Timeout: 5 * time.Second,
				},
			},
			dbComponents: &DatabaseComponents{
				OverridesRepo:   new(mocks.MockOverridesRepositoryInterface),
				ValidationsRepo: new(mocks.MockValidationsRepositoryInterface),
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Packing)
				assert.NotNil(t, components.Overrides)
				assert.NotNil(t, components.Validation)
			},
		},
		{
			name: "webhook notifier does not prevent validation wiring",
			cfg: config.Config{
				OrderSystem: config.OrderSystemConfig{
					BaseURL: "http://orders.internal",
					Timeout: 5 * time.Second,
				},
				Validation: config.ValidationConfig{
					WebhookURL:     "http://hooks.internal/validations",
					WebhookTimeout: 5 * time.Second,
				},
			},
			dbComponents: &DatabaseComponents{
				ValidationsRepo: new(mocks.MockValidationsRepositoryInterface),
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Validation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, tt.dbComponents)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Packing(t *testing.T) {
	components := InitializeServices(config.Config{}, nil)

	assert.NotNil(t, components.Packing)

	// The packing service works end to end without a database
	result, err := components.Packing.Pack(context.Background(), []model.OrderLine{
		{SKU: "VR2", Qty: 4},
	})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 4, result.TotalItems)
	assert.GreaterOrEqual(t, result.TotalPallets, 1)
}
