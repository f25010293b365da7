package desk

import (
	"context"
	"errors"
	"sync"
	"time"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"

	"go.uber.org/zap"
)

const (
	msgCancelled = "Shipment cancelled"
	msgAssigned  = "Courier assigned"
)

// View is the snapshot of a desk handed to the presentation layer.
type View struct {
	DeskID             string
	User               principal.User
	SearchTerm         string
	Shipments          []shipment.Shipment
	Filtered           []shipment.Shipment
	Tiles              []stats.Tile
	Couriers           []principal.User
	AssigningID        string
	SelectedCourier    string
	CanConfirmAssign   bool
	ConfirmingCancelID string
	Loading            bool
	Error              string
	RosterError        string
	Message            string
}

// Desk is the view session of one principal.
type Desk struct {
	id     kernel.UUID
	user   principal.User
	admin  ports.AdminService
	stats  services.StatsAggregator
	logger *zap.Logger

	list         *ShipmentListController
	cancellation *CancellationWorkflow
	assignment   *AssignmentWorkflow

	mu         sync.Mutex
	aggregate  *stats.DashboardStats
	tiles      []stats.Tile
	searchTerm string
	message    string
	lastSeen   time.Time
	now        func() time.Time
}

// Dependencies are the collaborators shared by every desk.
type Dependencies struct {
	Packages    ports.PackageService
	Admin       ports.AdminService
	Roster      queries.GetCourierRosterQueryHandler
	Cancel      commands.CancelShipmentCommandHandler
	Assign      commands.AssignCourierCommandHandler
	Aggregator  services.StatsAggregator
	ListOptions ListOptions
	Logger      *zap.Logger
	Now         func() time.Time
}

// New builds an inactive desk for user. Call Activate before reading its view.
func New(user principal.User, deps Dependencies) *Desk {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	d := &Desk{
		id:     kernel.NewUUID(),
		user:   user,
		admin:  deps.Admin,
		stats:  deps.Aggregator,
		now:    now,
		list:   NewShipmentListController(deps.Packages, deps.ListOptions, deps.Logger),
		logger: deps.Logger.With(zap.String("component", "desk"), zap.String("user_id", user.ID)),
	}
	d.lastSeen = now()
	d.cancellation = NewCancellationWorkflow(user, d.list, d, deps.Cancel)
	d.assignment = NewAssignmentWorkflow(user, d.list, d, deps.Roster, deps.Assign, deps.Logger)
	return d
}

func (d *Desk) ID() kernel.UUID {
	return d.id
}

func (d *Desk) User() principal.User {
	return d.user
}

// Activate loads the list and, for administrators, the roster and the
// platform aggregate. Failures are recorded in the view; the returned error
// is the list failure, if any.
func (d *Desk) Activate(ctx context.Context) error {
	d.touch()

	_, err := d.list.Load(ctx, d.user)
	if d.user.IsAdmin() {
		_ = d.assignment.LoadRoster(ctx)
		d.fetchAggregate(ctx)
	}
	d.recomputeTiles()
	return err
}

// Refresh reloads the list and the tiles. Workflows call it after a mutation.
func (d *Desk) Refresh(ctx context.Context) error {
	d.touch()

	err := d.list.Refresh(ctx)
	if d.user.IsAdmin() {
		d.fetchAggregate(ctx)
	}
	d.recomputeTiles()
	return err
}

func (d *Desk) fetchAggregate(ctx context.Context) {
	agg, err := d.admin.GetStats(ctx)
	if err != nil {
		d.logger.Warn("dashboard aggregate unavailable", zap.Error(err))
		return
	}
	d.mu.Lock()
	d.aggregate = &agg
	d.mu.Unlock()
}

func (d *Desk) recomputeTiles() {
	d.mu.Lock()
	source := services.StatsSource{Aggregate: d.aggregate, Shipments: d.list.Shipments()}
	d.mu.Unlock()

	tiles, err := d.stats.ComputeStats(d.user, source)
	if err != nil && !errors.Is(err, services.ErrAggregateRequired) {
		d.logger.Warn("tiles not computed", zap.Error(err))
	}

	d.mu.Lock()
	d.tiles = tiles
	d.mu.Unlock()
}

// RequestCancel puts shipmentID in ConfirmPending.
func (d *Desk) RequestCancel(shipmentID string) error {
	d.touch()
	return d.cancellation.Request(shipmentID)
}

func (d *Desk) AbortCancel() {
	d.touch()
	d.cancellation.Abort()
}

// ConfirmCancel issues the pending cancellation.
func (d *Desk) ConfirmCancel(ctx context.Context) (Completion, error) {
	d.touch()
	done, err := d.cancellation.Confirm(ctx)
	d.note(msgCancelled, err)
	return done, err
}

// OpenAssignment starts the assignment workflow for shipmentID.
func (d *Desk) OpenAssignment(ctx context.Context, shipmentID string) error {
	d.touch()
	return d.assignment.Open(ctx, shipmentID)
}

func (d *Desk) SelectCourier(courierID string) error {
	d.touch()
	return d.assignment.SelectCourier(courierID)
}

// ConfirmAssignment issues the selected assignment.
func (d *Desk) ConfirmAssignment(ctx context.Context) (Completion, error) {
	d.touch()
	done, err := d.assignment.Confirm(ctx)
	d.note(msgAssigned, err)
	return done, err
}

func (d *Desk) CloseAssignment() {
	d.touch()
	d.assignment.Close()
}

// note keeps the outcome of the last mutation. Rejected invocations leave
// the previous message alone.
func (d *Desk) note(success string, err error) {
	var action *ActionError
	switch {
	case err == nil:
		d.setMessage(success)
	case errors.As(err, &action):
		d.setMessage(action.Message)
	}
}

func (d *Desk) setMessage(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.message = msg
}

// View returns the current snapshot narrowed by term.
func (d *Desk) View(term string) View {
	d.touch()

	d.mu.Lock()
	d.searchTerm = term
	tiles := append([]stats.Tile(nil), d.tiles...)
	message := d.message
	d.mu.Unlock()

	assigningID, courierID := d.assignment.Selection()
	list := d.list.Snapshot(term)
	return View{
		DeskID:             d.id.String(),
		User:               d.user,
		SearchTerm:         term,
		Shipments:          list.Shipments,
		Filtered:           list.Filtered,
		Tiles:              tiles,
		Couriers:           d.assignment.Couriers(),
		AssigningID:        assigningID,
		SelectedCourier:    courierID,
		CanConfirmAssign:   d.assignment.CanConfirm(),
		ConfirmingCancelID: d.cancellation.Pending(),
		Loading:            list.Loading,
		Error:              list.Error,
		RosterError:        d.assignment.RosterError(),
		Message:            message,
	}
}

// SearchTerm is the term of the last View.
func (d *Desk) SearchTerm() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.searchTerm
}

// LastSeen is the time of the last interaction.
func (d *Desk) LastSeen() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSeen
}

func (d *Desk) touch() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastSeen = d.now()
}
