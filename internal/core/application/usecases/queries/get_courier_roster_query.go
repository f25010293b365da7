// Package queries contains read operations. Queries never mutate upstream
// state and return read models shaped for the desk and the HTTP layer.
package queries

import (
	"errors"

	"shipdesk/internal/pkg/guard"
)

var ErrGetCourierRosterQueryIsNotConstructed = errors.New(
	"GetCourierRosterQuery must be created via NewGetCourierRosterQuery constructor",
)

// GetCourierRosterQuery retrieves the users with the COURIER role.
//
// Example:
//
//	query := NewGetCourierRosterQuery(false)
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load roster: %w", err)
//	}
type GetCourierRosterQuery struct {
	bypassCache bool

	guard guard.ConstructorGuard
}

// NewGetCourierRosterQuery creates the query. bypassCache forces an upstream
// read and refreshes the cache with the result.
func NewGetCourierRosterQuery(bypassCache bool) GetCourierRosterQuery {
	return GetCourierRosterQuery{bypassCache: bypassCache, guard: guard.NewConstructorGuard()}
}

func (q GetCourierRosterQuery) BypassCache() bool {
	return q.bypassCache
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRosterQueryIsNotConstructed)
}
