package handler

import (
	"context"

	"dining-companion/internal/analytics"
	"dining-companion/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockLocationService is a mock implementation of LocationService.
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) List(ctx context.Context, query string) ([]model.DiningLocation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiningLocation), args.Error(1)
}

func (m *MockLocationService) GetByID(ctx context.Context, id string) (*model.DiningLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiningLocation), args.Error(1)
}

func (m *MockLocationService) Menu(ctx context.Context, id, diet string) (*model.LocationMenu, error) {
	args := m.Called(ctx, id, diet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocationMenu), args.Error(1)
}

func (m *MockLocationService) ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

// MockInsightService is a mock implementation of InsightService.
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) Recommendations(ctx context.Context, userID string, limit int) (analytics.Result[model.Recommendation], error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).(analytics.Result[model.Recommendation]), args.Error(1)
}

func (m *MockInsightService) Dislikes(ctx context.Context, userID string) (analytics.Result[model.Dislike], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(analytics.Result[model.Dislike]), args.Error(1)
}
