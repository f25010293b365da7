package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentActionsQueryHandler reads the action journal directly with SQL.
//
// Example:
//
//	handler := NewGetShipmentActionsQueryHandler(db)
//	query, _ := NewGetShipmentActionsQuery(shipmentID)
//
//	actions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetShipmentActionsQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentActionsQueryHandler(db *gorm.DB) GetShipmentActionsQueryHandler {
	return GetShipmentActionsQueryHandler{db: db}
}

// Handle returns the attempts newest first.
func (h GetShipmentActionsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentActionsQuery,
) ([]GetShipmentActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actions := make([]GetShipmentActionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			courier_id,
			actor_id,
			outcome,
			message,
			recorded_at
		FROM shipment_actions
		WHERE shipment_id = ?
		ORDER BY recorded_at DESC
	`, query.ShipmentID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			action        GetShipmentActionsQueryResponse
			id            uuid.UUID
			kind, outcome string
		)

		err = rows.Scan(
			&id,
			&kind,
			&action.CourierID,
			&action.ActorID,
			&outcome,
			&action.Message,
			&action.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		actionID, idErr := kernel.FromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		action.ID = actionID
		action.Action = journal.Action(kind)
		action.Outcome = journal.Outcome(outcome)
		actions = append(actions, action)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}
