package mocks

import (
	"context"

	"github.com/pageza/wep/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockRecipeProvider is a mock implementation of the recipe catalog client
type MockRecipeProvider struct {
	mock.Mock
}

// ListByCategory mocks the ListByCategory method
func (m *MockRecipeProvider) ListByCategory(ctx context.Context, category string) ([]model.RawMeal, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawMeal), args.Error(1)
}

// LookupByID mocks the LookupByID method
func (m *MockRecipeProvider) LookupByID(ctx context.Context, id string) (*model.RawMeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawMeal), args.Error(1)
}
