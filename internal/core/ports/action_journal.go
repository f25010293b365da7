package ports

import (
	"context"
	"time"

	"shipdesk/internal/core/domain/model/journal"
)

// ActionJournal records every cancel and assign attempt issued from a desk.
// Reads go through queries.GetShipmentActionsQueryHandler.
type ActionJournal interface {
	// Append stores a new entry.
	Append(ctx context.Context, entry journal.Entry) error

	// PruneBefore deletes entries recorded before cutoff and reports how many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
