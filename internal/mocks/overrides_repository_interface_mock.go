// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/repository"
)

type MockOverridesRepositoryInterface struct {
	mock.Mock
}

func (m *MockOverridesRepositoryInterface) Get(ctx context.Context, sku string) (*repository.DimensionOverride, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DimensionOverride), args.Error(1)
}

func (m *MockOverridesRepositoryInterface) Put(ctx context.Context, sku string, dims model.CartonDims, createdBy string) (*repository.DimensionOverride, error) {
	args := m.Called(ctx, sku, dims, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DimensionOverride), args.Error(1)
}

func (m *MockOverridesRepositoryInterface) Clear(ctx context.Context, sku string) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockOverridesRepositoryInterface) List(ctx context.Context) ([]repository.DimensionOverride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DimensionOverride), args.Error(1)
}
