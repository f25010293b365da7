package desk

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/pkg/errs"

	"go.uber.org/zap"
)

const msgRosterFailed = "Failed to fetch couriers"

// AssignmentWorkflow lets an administrator hand a shipment to a courier:
// Idle -> Selecting(shipmentID, courierID) -> Idle.
//
// A failed confirmation keeps both selections so the user can retry.
type AssignmentWorkflow struct {
	user    principal.User
	list    ShipmentLookup
	refresh Refresher
	roster  queries.GetCourierRosterQueryHandler
	handler commands.AssignCourierCommandHandler
	logger  *zap.Logger

	mu         sync.Mutex
	couriers   []principal.User
	rosterErr  bool
	shipmentID string
	courierID  string
	submitting bool
}

func NewAssignmentWorkflow(
	user principal.User,
	list ShipmentLookup,
	refresh Refresher,
	roster queries.GetCourierRosterQueryHandler,
	handler commands.AssignCourierCommandHandler,
	logger *zap.Logger,
) *AssignmentWorkflow {
	return &AssignmentWorkflow{
		user:    user,
		list:    list,
		refresh: refresh,
		roster:  roster,
		handler: handler,
		logger:  logger.With(zap.String("component", "assignment_workflow")),
	}
}

// LoadRoster fetches the courier roster unless it is already known.
// A failure leaves the roster empty and is reported by RosterError.
func (w *AssignmentWorkflow) LoadRoster(ctx context.Context) error {
	if !w.user.IsAdmin() {
		return ErrAssignmentNotPermitted
	}

	w.mu.Lock()
	known := len(w.couriers) > 0
	w.mu.Unlock()
	if known {
		return nil
	}

	return w.fetchRoster(ctx, false)
}

func (w *AssignmentWorkflow) fetchRoster(ctx context.Context, bypassCache bool) error {
	couriers, err := w.roster.Handle(ctx, queries.NewGetCourierRosterQuery(bypassCache))

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.logger.Warn("courier roster unavailable", zap.Error(err))
		w.rosterErr = true
		return err
	}
	w.couriers = couriers
	w.rosterErr = false
	return nil
}

// Open starts an assignment for shipmentID with no courier selected.
// The dialog opens even when the roster can not be loaded.
func (w *AssignmentWorkflow) Open(ctx context.Context, shipmentID string) error {
	if !w.user.IsAdmin() {
		return ErrAssignmentNotPermitted
	}
	if _, ok := w.list.Find(shipmentID); !ok {
		return errs.NewObjectNotFoundError("shipment", shipmentID)
	}

	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	w.shipmentID = shipmentID
	w.courierID = ""
	w.mu.Unlock()

	_ = w.LoadRoster(ctx)
	return nil
}

// SelectCourier records the chosen courier. It must be a roster member.
func (w *AssignmentWorkflow) SelectCourier(courierID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.shipmentID == "" {
		return ErrAssignmentNotOpen
	}
	if courierID != "" && !slices.ContainsFunc(w.couriers, func(u principal.User) bool { return u.ID == courierID }) {
		return errs.NewObjectNotFoundError("courier", courierID)
	}
	w.courierID = courierID
	return nil
}

// Confirm assigns the selected courier. Without both selections nothing is
// sent and ErrSelectionIncomplete is returned. On failure the error is an
// *ActionError and the selections are kept. A 404 from upstream means the
// roster may be stale, so it is re-read past the cache.
func (w *AssignmentWorkflow) Confirm(ctx context.Context) (Completion, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return Completion{}, ErrSubmissionInFlight
	}
	if w.shipmentID == "" || w.courierID == "" {
		w.mu.Unlock()
		return Completion{}, ErrSelectionIncomplete
	}
	shipmentID, courierID := w.shipmentID, w.courierID
	w.submitting = true
	w.mu.Unlock()

	err := w.assign(ctx, shipmentID, courierID)

	w.mu.Lock()
	w.submitting = false
	if err == nil {
		w.shipmentID = ""
		w.courierID = ""
	}
	w.mu.Unlock()

	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			_ = w.fetchRoster(ctx, true)
		}
		return Completion{}, actionError(err, msgAssignFailed)
	}

	done := Completion{ShipmentID: shipmentID, Refreshed: true}
	if w.refresh.Refresh(ctx) != nil {
		done.Refreshed = false
	}
	return done, nil
}

func (w *AssignmentWorkflow) assign(ctx context.Context, shipmentID, courierID string) error {
	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID, w.user.ID)
	if err != nil {
		return err
	}
	return w.handler.Handle(ctx, cmd)
}

// Close abandons the assignment.
func (w *AssignmentWorkflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shipmentID = ""
	w.courierID = ""
}

// CanConfirm reports whether Confirm would issue a call.
func (w *AssignmentWorkflow) CanConfirm() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shipmentID != "" && w.courierID != "" && !w.submitting
}

// Selection returns the shipment and courier currently selected.
func (w *AssignmentWorkflow) Selection() (shipmentID, courierID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shipmentID, w.courierID
}

// Couriers returns the roster offered in the selection.
func (w *AssignmentWorkflow) Couriers() []principal.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.couriers)
}

// RosterError is the message of the last failed roster load, or "".
func (w *AssignmentWorkflow) RosterError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rosterErr {
		return msgRosterFailed
	}
	return ""
}
