// Package ports defines the contracts between the shipdesk core and the outside
// world: the upstream courier backend, the roster cache and the action journal.
package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/shipment"
)

// Page is one page of an upstream collection.
type Page[T any] struct {
	Content       []T
	TotalElements int64
}

// PackageService is the upstream shipment API, called on behalf of the
// principal carried by ctx.
type PackageService interface {
	// GetAllPackages returns up to size shipments of the whole platform.
	// Only administrators are allowed to call it; others get an authorization error.
	GetAllPackages(ctx context.Context, size int) (Page[shipment.Shipment], error)

	// GetMyPackages returns the shipments owned by the caller.
	GetMyPackages(ctx context.Context) ([]shipment.Shipment, error)

	// CancelPackage moves the shipment to CANCELLED.
	// Errors carry the upstream message when one was supplied.
	CancelPackage(ctx context.Context, id string) error
}
