package queries

import (
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

const (
	// RecentShipmentsSize is how many shipments the dashboard lists.
	RecentShipmentsSize = 5
	// LiveFeedSize is how many recent shipments feed the activity ticker.
	LiveFeedSize = 3
)

// GetDashboardQuery builds the dashboard of one principal.
type GetDashboardQuery struct {
	user principal.User

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery validates the principal and builds the query.
func NewGetDashboardQuery(user principal.User) (GetDashboardQuery, error) {
	if _, err := principal.NewUser(user.ID, user.Name, user.Email, user.Role); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{user: user, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) User() principal.User {
	return q.user
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// FeedItem is one line of the live activity feed.
type FeedItem struct {
	TrackingNumber string
	StatusLabel    string
	At             time.Time
}

// GetDashboardQueryResponse is the dashboard read model. FleetAgents is only
// filled for administrators.
type GetDashboardQueryResponse struct {
	Tiles       []stats.Tile
	Recent      []shipment.Shipment
	LiveFeed    []FeedItem
	FleetAgents *int64
}
