package commands

import (
	"context"
	"time"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/ports"

	"go.uber.org/zap"
)

// CancelShipmentCommandHandler issues the cancel mutation and journals the attempt.
type CancelShipmentCommandHandler struct {
	packages ports.PackageService
	journal  ports.ActionJournal
	logger   *zap.Logger
}

// NewCancelShipmentCommandHandler creates the handler. journal may be nil when
// no journal is configured.
func NewCancelShipmentCommandHandler(
	packages ports.PackageService,
	journal ports.ActionJournal,
	logger *zap.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		packages: packages,
		journal:  journal,
		logger:   logger.With(zap.String("component", "cancel_shipment_handler")),
	}
}

// Handle cancels the shipment. The upstream error is returned unchanged so
// callers can surface the server message.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, command CancelShipmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.packages.CancelPackage(ctx, command.ShipmentID())
	record(ctx, h.journal, h.logger, journal.ActionCancel, command.ShipmentID(), "", command.ActorID(), err)

	return err
}

// record appends a journal entry. A journal failure never fails the mutation.
func record(
	ctx context.Context,
	j ports.ActionJournal,
	logger *zap.Logger,
	action journal.Action,
	shipmentID, courierID, actorID string,
	failure error,
) {
	if j == nil {
		return
	}

	entry, err := journal.NewEntry(action, shipmentID, courierID, actorID, failure, time.Now())
	if err != nil {
		logger.Warn("journal entry rejected", zap.Error(err))
		return
	}
	if err = j.Append(ctx, entry); err != nil {
		logger.Warn("journal append failed",
			zap.String("action", string(action)),
			zap.String("shipment_id", shipmentID),
			zap.Error(err))
	}
}
