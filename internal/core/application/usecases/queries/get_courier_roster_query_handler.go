package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/ports"

	"go.uber.org/zap"
)

// DefaultRosterPageSize is the number of users requested when building the roster.
const DefaultRosterPageSize = 100

// GetCourierRosterQueryHandler reads the courier roster, cache first.
// A broken cache degrades to an upstream read; it never fails the query.
type GetCourierRosterQueryHandler struct {
	admin    ports.AdminService
	cache    ports.RosterCache
	pageSize int
	logger   *zap.Logger
}

// NewGetCourierRosterQueryHandler creates the handler. cache may be nil;
// a non-positive pageSize selects DefaultRosterPageSize.
func NewGetCourierRosterQueryHandler(
	admin ports.AdminService,
	cache ports.RosterCache,
	pageSize int,
	logger *zap.Logger,
) GetCourierRosterQueryHandler {
	if pageSize <= 0 {
		pageSize = DefaultRosterPageSize
	}
	return GetCourierRosterQueryHandler{
		admin:    admin,
		cache:    cache,
		pageSize: pageSize,
		logger:   logger.With(zap.String("component", "courier_roster_query")),
	}
}

// Handle returns the couriers in the order the upstream listed them.
func (h GetCourierRosterQueryHandler) Handle(ctx context.Context, query GetCourierRosterQuery) ([]principal.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil && !query.BypassCache() {
		couriers, ok, err := h.cache.Get(ctx)
		switch {
		case err != nil:
			h.logger.Warn("roster cache read failed", zap.Error(err))
		case ok:
			return couriers, nil
		}
	}

	page, err := h.admin.GetAllUsers(ctx, h.pageSize)
	if err != nil {
		return nil, err
	}
	couriers := principal.Couriers(page.Content)

	if h.cache != nil {
		if err = h.cache.Put(ctx, couriers); err != nil {
			h.logger.Warn("roster cache write failed", zap.Error(err))
		}
	}

	return couriers, nil
}
