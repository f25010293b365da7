package desk_test

import (
	"context"
	"net/http"
	"time"

	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
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

var (
	adminUser    = principal.User{ID: "a-1", Name: "Ada", Role: principal.Admin}
	customerUser = principal.User{ID: "u-1", Name: "Uma", Role: principal.Customer}
)

func forbidden() error {
	return errs.NewRemoteError("get all packages", http.StatusForbidden, "Access denied")
}

func sample() []shipment.Shipment {
	at := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	return []shipment.Shipment{
		{ID: "p-1", TrackingNumber: "TRK001", Status: shipment.InTransit, Sender: shipment.Party{Name: "Alice"}, Receiver: shipment.Party{Name: "Bob"}, CreatedAt: at},
		{ID: "p-2", TrackingNumber: "TRK002", Status: shipment.Delivered, Sender: shipment.Party{Name: "Carol"}, Receiver: shipment.Party{Name: "Dan"}, CreatedAt: at},
		{ID: "p-3", TrackingNumber: "TRK003", Status: shipment.Created, Sender: shipment.Party{Name: "Eve"}, Receiver: shipment.Party{Name: "Frank"}, CreatedAt: at},
		{ID: "p-4", TrackingNumber: "TRK004", Status: shipment.Delivered, Sender: shipment.Party{Name: "Gina"}, Receiver: shipment.Party{Name: "Hal"}, CreatedAt: at},
		{ID: "p-5", TrackingNumber: "TRK005", Status: shipment.Cancelled, Sender: shipment.Party{Name: "Ivy"}, Receiver: shipment.Party{Name: "Jon"}, CreatedAt: at},
	}
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
	return m.Called(ctx, couriers).Error(0)
}

func couriers() []principal.User {
	return []principal.User{
		{ID: "a-1", Name: "Ada", Role: principal.Admin},
		{ID: "c-1", Name: "Carl", Role: principal.Courier},
		{ID: "c-2", Name: "Cleo", Role: principal.Courier},
	}
}

type fixture struct {
	packages *MockPackageService
	admin    *MockAdminService
	deps     desk.Dependencies
}

func newFixture(policy desk.FallbackPolicy) *fixture {
	packages := new(MockPackageService)
	admin := new(MockAdminService)
	logger := zap.NewNop()

	return &fixture{
		packages: packages,
		admin:    admin,
		deps: desk.Dependencies{
			Packages:    packages,
			Admin:       admin,
			Roster:      queries.NewGetCourierRosterQueryHandler(admin, nil, 0, logger),
			Cancel:      commands.NewCancelShipmentCommandHandler(packages, nil, logger),
			Assign:      commands.NewAssignCourierCommandHandler(admin, nil, logger),
			Aggregator:  services.NewStatsAggregator(),
			ListOptions: desk.ListOptions{FallbackPolicy: policy},
			Logger:      logger,
		},
	}
}
