package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/mocks"
	"github.com/velofab/pallet-service/internal/repository"
	"github.com/velofab/pallet-service/internal/service"
)

func setupOverridesRouter() (*gin.Engine, *mocks.MockOverridesService) {
	mockOverrides := new(mocks.MockOverridesService)
	cfg := DefaultRouterConfig()
	cfg.PackingService = service.NewPackingService()
	cfg.OverridesService = mockOverrides
	return NewRouter(NewHealthHandler(), cfg), mockOverrides
}

func overrideDims() model.CartonDims {
	return model.CartonDims{LengthIn: 62, WidthIn: 30, HeightIn: 9, WeightLbs: 78}
}

func TestOverridesHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockOverridesService)
		expectedStatus int
	}{
		{
			name: "returns overrides",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("List", mock.Anything).Return([]repository.DimensionOverride{
					{SKU: "vr2", Dims: overrideDims()},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "store not configured",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("List", mock.Anything).Return(nil, service.ErrRepositoryNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "store failure",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("List", mock.Anything).Return(nil, errors.New("mongo down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockOverrides := setupOverridesRouter()
			tt.setupMocks(mockOverrides)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/overrides", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockOverrides.AssertExpectations(t)
		})
	}
}

func TestOverridesHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		sku            string
		setupMocks     func(*mocks.MockOverridesService)
		expectedStatus int
	}{
		{
			name: "existing override",
			sku:  "VR2",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Get", mock.Anything, "VR2").Return(&repository.DimensionOverride{
					SKU: "vr2", Dims: overrideDims(),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing override",
			sku:  "NOPE",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Get", mock.Anything, "NOPE").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			sku:  "VR2",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Get", mock.Anything, "VR2").Return(nil, errors.New("mongo down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockOverrides := setupOverridesRouter()
			tt.setupMocks(mockOverrides)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/overrides/"+tt.sku, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockOverrides.AssertExpectations(t)
		})
	}
}

func TestOverridesHandler_Put(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockOverridesService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid override",
			body: `{"length": 62, "width": 30, "height": 9, "weight": 78, "created_by": "ops"}`,
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Put", mock.Anything, "VR2", overrideDims(), "ops").
					Return(&repository.DimensionOverride{SKU: "vr2", Dims: overrideDims(), CreatedBy: "ops"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp struct {
					Data repository.DimensionOverride `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "vr2", resp.Data.SKU)
			},
		},
		{
			name:           "malformed json",
			body:           `{"length": `,
			setupMocks:     func(m *mocks.MockOverridesService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing dimensions",
			body:           `{"length": 62, "width": 30}`,
			setupMocks:     func(m *mocks.MockOverridesService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service rejects dims",
			body: `{"length": 62, "width": 30, "height": 9, "weight": 78}`,
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Put", mock.Anything, "VR2", overrideDims(), "").
					Return(nil, service.ErrInvalidDims)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store not configured",
			body: `{"length": 62, "width": 30, "height": 9, "weight": 78}`,
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Put", mock.Anything, "VR2", overrideDims(), "").
					Return(nil, service.ErrRepositoryNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockOverrides := setupOverridesRouter()
			tt.setupMocks(mockOverrides)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, "/api/overrides/VR2", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			mockOverrides.AssertExpectations(t)
		})
	}
}

func TestOverridesHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockOverridesService)
		expectedStatus int
	}{
		{
			name: "clears the override",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Clear", mock.Anything, "VR2").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "store failure",
			setupMocks: func(m *mocks.MockOverridesService) {
				m.On("Clear", mock.Anything, "VR2").Return(errors.New("mongo down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockOverrides := setupOverridesRouter()
			tt.setupMocks(mockOverrides)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, "/api/overrides/VR2", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockOverrides.AssertExpectations(t)
		})
	}
}
