package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand asks the backend to cancel one shipment.
//
// Example:
//
//	cmd, err := NewCancelShipmentCommand(shipmentID, user.ID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CancelShipmentCommand struct {
	shipmentID string
	actorID    string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand validates the shipment id and builds the command.
func NewCancelShipmentCommand(shipmentID, actorID string) (CancelShipmentCommand, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return CancelShipmentCommand{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return CancelShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelShipmentCommand) ShipmentID() string {
	return c.shipmentID
}

func (c CancelShipmentCommand) ActorID() string {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}
