package http_test

import (
	"context"
	"time"

	"shipdesk/internal/core/application/usecases/queries"
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
	return m.Called(ctx, id).Error(0)
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
	return m.Called(ctx, shipmentID, courierID).Error(0)
}

type MockActionsReader struct{ mock.Mock }

func (m *MockActionsReader) Handle(
	ctx context.Context,
	query queries.GetShipmentActionsQuery,
) ([]queries.GetShipmentActionsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetShipmentActionsQueryResponse), args.Error(1)
}

var (
	customer = principal.User{ID: "u-1", Name: "Uma", Email: "uma@example.com", Role: principal.Customer}
	other    = principal.User{ID: "u-2", Name: "Otto", Email: "otto@example.com", Role: principal.Customer}
	admin    = principal.User{ID: "a-1", Name: "Ada", Email: "ada@example.com", Role: principal.Admin}
)

func sample() []shipment.Shipment {
	at := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	return []shipment.Shipment{
		{ID: "p-1", TrackingNumber: "TRK001", Status: shipment.InTransit, Sender: shipment.Party{Name: "Alice"}, Receiver: shipment.Party{Name: "Bob"}, CreatedAt: at},
		{ID: "p-2", TrackingNumber: "TRK002", Status: shipment.Delivered, Sender: shipment.Party{Name: "Carol"}, Receiver: shipment.Party{Name: "Dan"}, CreatedAt: at},
		{ID: "p-3", TrackingNumber: "TRK003", Status: shipment.Created, Sender: shipment.Party{Name: "Eve"}, Receiver: shipment.Party{Name: "Frank"}, CreatedAt: at},
	}
}

func sampleStats() stats.DashboardStats {
	return stats.DashboardStats{
		TotalPackages:     3,
		CreatedPackages:   1,
		InTransitPackages: 1,
		DeliveredPackages: 1,
		TotalUsers:        2,
		TotalCouriers:     1,
	}
}
