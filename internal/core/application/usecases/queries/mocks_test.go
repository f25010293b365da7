package queries_test

import (
	"context"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageService struct{ mock.Mock }

func (m *MockPackageService) GetAllPackages(ctx context.Context, size int) (ports.Page[shipment.Shipment], error) {
	args := m.Called(ctx, size)
	return args.Get(0).(ports.Page[shipment.Shipment]), args.Error(1)
}

func (m *MockPackageService) GetMyPackages(ctx context.Context) ([]shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipment.Shipment), args.Error(1)
}

func (m *MockPackageService) CancelPackage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) GetStats(ctx context.Context) (stats.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(stats.DashboardStats), args.Error(1)
}

func (m *MockAdminService) GetAllUsers(ctx context.Context, size int) (ports.Page[principal.User], error) {
	args := m.Called(ctx, size)
	return args.Get(0).(ports.Page[principal.User]), args.Error(1)
}

func (m *MockAdminService) AssignCourier(ctx context.Context, shipmentID, courierID string) error {
	args := m.Called(ctx, shipmentID, courierID)
	return args.Error(0)
}

type MockRosterCache struct{ mock.Mock }

func (m *MockRosterCache) Get(ctx context.Context) ([]principal.User, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]principal.User), args.Bool(1), args.Error(2)
}

func (m *MockRosterCache) Put(ctx context.Context, couriers []principal.User) error {
	args := m.Called(ctx, couriers)
	return args.Error(0)
}
