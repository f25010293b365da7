// Package http is the echo presentation adapter of shipdesk. Every desk
// operation maps onto one route under /api/v1; the caller is always the
// principal decoded from the bearer token.
package http

import (
	"context"
	"net/http"
	"strings"

	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// Desks is the registry of open desks.
type Desks interface {
	Open(ctx context.Context, user principal.User) (*desk.Desk, error)
	Get(id kernel.UUID, user principal.User) (*desk.Desk, error)
	Close(id kernel.UUID, user principal.User) error
}

type DashboardReader interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
}

type ActionsReader interface {
	Handle(ctx context.Context, query queries.GetShipmentActionsQuery) ([]queries.GetShipmentActionsQueryResponse, error)
}

var _ Desks = (*desk.Registry)(nil)

// Server holds the handlers of the /api/v1 routes.
type Server struct {
	desks     Desks
	dashboard DashboardReader
	actions   ActionsReader
	logger    *zap.Logger
}

// NewServer wires the handlers. actions may be nil when no journal is configured.
func NewServer(desks Desks, dashboard DashboardReader, actions ActionsReader, logger *zap.Logger) *Server {
	return &Server{
		desks:     desks,
		dashboard: dashboard,
		actions:   actions,
		logger:    logger.With(zap.String("component", "http")),
	}
}

// OpenDesk handles POST /api/v1/desks.
func (s *Server) OpenDesk(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeJSONError(c, http.StatusUnauthorized, "Authentication required")
	}

	d, err := s.desks.Open(c.Request().Context(), user)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, DeskEnvelope{
		ID:   d.ID().String(),
		View: toDeskView(d.View("")),
	})
}

// GetDesk handles GET /api/v1/desks/{deskId}?q=term.
func (s *Server) GetDesk(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toDeskView(d.View(c.QueryParam("q"))))
}

// CloseDesk handles DELETE /api/v1/desks/{deskId}.
func (s *Server) CloseDesk(c echo.Context) error {
	user, id, err := s.deskRef(c)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.desks.Close(id, user); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshDesk handles POST /api/v1/desks/{deskId}/refresh. A failed refresh
// keeps the previous list; the failure is part of the returned view.
func (s *Server) RefreshDesk(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = d.Refresh(c.Request().Context()); err != nil {
		s.logger.Warn("refresh failed", zap.String("desk_id", d.ID().String()), zap.Error(err))
	}
	return s.view(c, d)
}

// RequestCancellation handles POST /api/v1/desks/{deskId}/cancellation.
func (s *Server) RequestCancellation(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var body ShipmentRef
	if err = bindBody(c, &body); err != nil {
		return s.writeError(c, err)
	}
	if err = d.RequestCancel(body.ShipmentID); err != nil {
		return s.writeError(c, err)
	}
	return s.view(c, d)
}

// AbortCancellation handles DELETE /api/v1/desks/{deskId}/cancellation.
func (s *Server) AbortCancellation(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	d.AbortCancel()
	return s.view(c, d)
}

// ConfirmCancellation handles POST /api/v1/desks/{deskId}/cancellation/confirm.
func (s *Server) ConfirmCancellation(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	if _, err = d.ConfirmCancel(c.Request().Context()); err != nil {
		return s.writeError(c, err)
	}
	return s.view(c, d)
}

// OpenAssignment handles POST /api/v1/desks/{deskId}/assignment.
func (s *Server) OpenAssignment(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var body ShipmentRef
	if err = bindBody(c, &body); err != nil {
		return s.writeError(c, err)
	}
	if err = d.OpenAssignment(c.Request().Context(), body.ShipmentID); err != nil {
		return s.writeError(c, err)
	}
	return s.view(c, d)
}

// SelectCourier handles PUT /api/v1/desks/{deskId}/assignment/courier.
func (s *Server) SelectCourier(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var body CourierRef
	if err = bindBody(c, &body); err != nil {
		return s.writeError(c, err)
	}
	if err = d.SelectCourier(body.CourierID); err != nil {
		return s.writeError(c, err)
	}
	return s.view(c, d)
}

// ConfirmAssignment handles POST /api/v1/desks/{deskId}/assignment/confirm.
func (s *Server) ConfirmAssignment(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	if _, err = d.ConfirmAssignment(c.Request().Context()); err != nil {
		return s.writeError(c, err)
	}
	return s.view(c, d)
}

// CloseAssignment handles DELETE /api/v1/desks/{deskId}/assignment.
func (s *Server) CloseAssignment(c echo.Context) error {
	d, err := s.desk(c)
	if err != nil {
		return s.writeError(c, err)
	}
	d.CloseAssignment()
	return s.view(c, d)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeJSONError(c, http.StatusUnauthorized, "Authentication required")
	}

	query, err := queries.NewGetDashboardQuery(user)
	if err != nil {
		return s.writeError(c, err)
	}

	response, err := s.dashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toDashboard(response))
}

// GetStatusPresentation handles GET /api/v1/statuses/{status}/presentation.
// Unknown statuses get the neutral badge.
func (s *Server) GetStatusPresentation(c echo.Context) error {
	var status string
	err := runtime.BindStyledParameterWithOptions("simple", "status", c.Param("status"), &status,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	p := shipment.PresentationOf(shipment.Status(strings.ToUpper(strings.TrimSpace(status))))
	return c.JSON(http.StatusOK, toPresentation(p))
}

// GetShipmentActions handles GET /api/v1/shipments/{shipmentId}/actions.
func (s *Server) GetShipmentActions(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeJSONError(c, http.StatusUnauthorized, "Authentication required")
	}
	if !user.IsAdmin() {
		return writeJSONError(c, http.StatusForbidden, "Only administrators can read the action journal")
	}
	if s.actions == nil {
		return writeJSONError(c, http.StatusServiceUnavailable, "Action journal is not configured")
	}

	var shipmentID string
	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", c.Param("shipmentId"), &shipmentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("shipmentId", err))
	}

	query, err := queries.NewGetShipmentActionsQuery(shipmentID)
	if err != nil {
		return s.writeError(c, err)
	}

	actions, err := s.actions.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toActions(actions))
}

func (s *Server) view(c echo.Context, d *desk.Desk) error {
	return c.JSON(http.StatusOK, toDeskView(d.View(d.SearchTerm())))
}

func (s *Server) desk(c echo.Context) (*desk.Desk, error) {
	user, id, err := s.deskRef(c)
	if err != nil {
		return nil, err
	}
	return s.desks.Get(id, user)
}

func (s *Server) deskRef(c echo.Context) (principal.User, kernel.UUID, error) {
	user, ok := currentUser(c)
	if !ok {
		return principal.User{}, kernel.UUID{}, errs.NewValueIsRequiredError("principal")
	}

	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "deskId", c.Param("deskId"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return principal.User{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("deskId", err)
	}

	id, err := kernel.FromGoogle(raw)
	if err != nil {
		return principal.User{}, kernel.UUID{}, err
	}
	return user, id, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(dst)
}
