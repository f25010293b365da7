package queries

import (
	"errors"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrGetShipmentActionsQueryIsNotConstructed = errors.New(
	"GetShipmentActionsQuery must be created via NewGetShipmentActionsQuery constructor",
)

// GetShipmentActionsQuery lists the journaled cancel and assign attempts of one shipment.
type GetShipmentActionsQuery struct {
	shipmentID string

	guard guard.ConstructorGuard
}

func NewGetShipmentActionsQuery(shipmentID string) (GetShipmentActionsQuery, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return GetShipmentActionsQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}
	return GetShipmentActionsQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentActionsQuery) ShipmentID() string {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentActionsQueryIsNotConstructed)
}

// GetShipmentActionsQueryResponse is one journaled attempt.
type GetShipmentActionsQueryResponse struct {
	ID         kernel.UUID
	Action     journal.Action
	CourierID  string
	ActorID    string
	Outcome    journal.Outcome
	Message    string
	RecordedAt time.Time
}
