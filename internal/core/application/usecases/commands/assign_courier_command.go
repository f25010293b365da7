package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand hands one shipment to one courier.
// Both ids are mandatory: an incomplete selection can not be turned into a command.
type AssignCourierCommand struct {
	shipmentID string
	courierID  string
	actorID    string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand validates both ids and builds the command.
func NewAssignCourierCommand(shipmentID, courierID, actorID string) (AssignCourierCommand, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return AssignCourierCommand{}, errs.NewValueIsRequiredError("shipmentID")
	}
	if strings.TrimSpace(courierID) == "" {
		return AssignCourierCommand{}, errs.NewValueIsRequiredError("courierID")
	}

	return AssignCourierCommand{
		shipmentID: shipmentID,
		courierID:  courierID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCourierCommand) ShipmentID() string {
	return c.shipmentID
}

func (c AssignCourierCommand) CourierID() string {
	return c.courierID
}

func (c AssignCourierCommand) ActorID() string {
	return c.actorID
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}
