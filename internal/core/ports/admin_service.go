package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/stats"
)

// AdminService is the upstream administration API.
type AdminService interface {
	// GetStats returns the platform-wide dashboard aggregate.
	GetStats(ctx context.Context) (stats.DashboardStats, error)

	// GetAllUsers returns up to size users of every role.
	GetAllUsers(ctx context.Context, size int) (Page[principal.User], error)

	// AssignCourier hands the shipment to the courier.
	AssignCourier(ctx context.Context, shipmentID, courierID string) error
}
