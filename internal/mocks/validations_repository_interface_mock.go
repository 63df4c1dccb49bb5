// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/velofab/pallet-service/internal/domain/model"
)

type MockValidationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockValidationsRepositoryInterface) Write(ctx context.Context, record *model.ValidationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockValidationsRepositoryInterface) Get(ctx context.Context, referenceOrderID string) (*model.ValidationRecord, error) {
	args := m.Called(ctx, referenceOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ValidationRecord), args.Error(1)
}

func (m *MockValidationsRepositoryInterface) List(ctx context.Context, limit int) ([]model.ValidationRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ValidationRecord), args.Error(1)
}
