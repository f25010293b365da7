package desk

import (
	"context"
	"sync"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"
)

// Refresher reloads the data a desk shows after a mutation.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ShipmentLookup finds a shipment in the list a desk currently shows.
type ShipmentLookup interface {
	Find(id string) (shipment.Shipment, bool)
}

// Completion describes a successful mutation. Refreshed is false when the
// follow-up refresh failed; the list then keeps its previous content.
type Completion struct {
	ShipmentID string
	Refreshed  bool
}

// CancellationWorkflow is the two-step cancel interaction:
// Idle -> ConfirmPending(shipmentID) -> Idle.
//
// Request never calls the backend. Confirm issues exactly one cancel call.
type CancellationWorkflow struct {
	user    principal.User
	list    ShipmentLookup
	refresh Refresher
	handler commands.CancelShipmentCommandHandler

	mu         sync.Mutex
	pendingID  string
	submitting bool
}

func NewCancellationWorkflow(
	user principal.User,
	list ShipmentLookup,
	refresh Refresher,
	handler commands.CancelShipmentCommandHandler,
) *CancellationWorkflow {
	return &CancellationWorkflow{user: user, list: list, refresh: refresh, handler: handler}
}

// CanCancel reports whether the cancel action may be offered for s.
func (w *CancellationWorkflow) CanCancel(s shipment.Shipment) bool {
	return s.Cancellable()
}

// Request asks for confirmation of the cancellation of shipmentID.
func (w *CancellationWorkflow) Request(shipmentID string) error {
	s, ok := w.list.Find(shipmentID)
	if !ok {
		return errs.NewObjectNotFoundError("shipment", shipmentID)
	}
	if !w.CanCancel(s) {
		return ErrShipmentNotCancellable
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	w.pendingID = shipmentID
	return nil
}

// Pending returns the shipment awaiting confirmation, or "".
func (w *CancellationWorkflow) Pending() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pendingID
}

// Abort drops a pending request without side effects.
func (w *CancellationWorkflow) Abort() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingID = ""
}

// Confirm cancels the pending shipment. The workflow returns to Idle whatever
// the outcome; on failure the error is an *ActionError.
func (w *CancellationWorkflow) Confirm(ctx context.Context) (Completion, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return Completion{}, ErrSubmissionInFlight
	}
	if w.pendingID == "" {
		w.mu.Unlock()
		return Completion{}, ErrConfirmationRequired
	}
	shipmentID := w.pendingID
	w.submitting = true
	w.mu.Unlock()

	err := w.cancel(ctx, shipmentID)

	w.mu.Lock()
	w.submitting = false
	w.pendingID = ""
	w.mu.Unlock()

	if err != nil {
		return Completion{}, actionError(err, msgCancelFailed)
	}

	done := Completion{ShipmentID: shipmentID, Refreshed: true}
	if w.refresh.Refresh(ctx) != nil {
		done.Refreshed = false
	}
	return done, nil
}

func (w *CancellationWorkflow) cancel(ctx context.Context, shipmentID string) error {
	cmd, err := commands.NewCancelShipmentCommand(shipmentID, w.user.ID)
	if err != nil {
		return err
	}
	return w.handler.Handle(ctx, cmd)
}

func actionError(err error, fallback string) *ActionError {
	msg := errs.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	return &ActionError{Message: msg, Cause: err}
}
