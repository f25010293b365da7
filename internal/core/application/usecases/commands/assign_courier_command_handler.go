package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/ports"

	"go.uber.org/zap"
)

// AssignCourierCommandHandler issues the assignment mutation and journals the attempt.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(admin, journal, logger)
//	cmd, _ := NewAssignCourierCommand(shipmentID, courierID, user.ID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    msg := errs.ServerMessage(err)
//	    ...
//	}
type AssignCourierCommandHandler struct {
	admin   ports.AdminService
	journal ports.ActionJournal
	logger  *zap.Logger
}

// NewAssignCourierCommandHandler creates the handler. journal may be nil.
func NewAssignCourierCommandHandler(
	admin ports.AdminService,
	journal ports.ActionJournal,
	logger *zap.Logger,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		admin:   admin,
		journal: journal,
		logger:  logger.With(zap.String("component", "assign_courier_handler")),
	}
}

// Handle assigns the courier and returns the upstream error unchanged.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.admin.AssignCourier(ctx, command.ShipmentID(), command.CourierID())
	record(ctx, h.journal, h.logger, journal.ActionAssign,
		command.ShipmentID(), command.CourierID(), command.ActorID(), err)

	return err
}
