package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/principal"
)

// RosterCache keeps the courier roster between desk activations.
// A miss is reported as (nil, false, nil); errors are reserved for a broken cache.
type RosterCache interface {
	Get(ctx context.Context) ([]principal.User, bool, error)
	Put(ctx context.Context, couriers []principal.User) error
}
