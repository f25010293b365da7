package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
)

// GetDashboardQueryHandler assembles the dashboard from upstream reads.
//
// Administrators get the backend aggregate and the latest shipments of the
// whole platform; everyone else gets tiles counted over their own list.
type GetDashboardQueryHandler struct {
	packages   ports.PackageService
	admin      ports.AdminService
	aggregator services.StatsAggregator
}

func NewGetDashboardQueryHandler(
	packages ports.PackageService,
	admin ports.AdminService,
	aggregator services.StatsAggregator,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{packages: packages, admin: admin, aggregator: aggregator}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	user := query.User()
	var (
		source services.StatsSource
		recent []shipment.Shipment
		fleet  *int64
	)

	if user.IsAdmin() {
		agg, err := h.admin.GetStats(ctx)
		if err != nil {
			return GetDashboardQueryResponse{}, err
		}
		page, err := h.packages.GetAllPackages(ctx, RecentShipmentsSize)
		if err != nil {
			return GetDashboardQueryResponse{}, err
		}
		source.Aggregate = &agg
		recent = page.Content
		fleet = &agg.TotalCouriers
	} else {
		mine, err := h.packages.GetMyPackages(ctx)
		if err != nil {
			return GetDashboardQueryResponse{}, err
		}
		source.Shipments = mine
		recent = mine
	}

	tiles, err := h.aggregator.ComputeStats(user, source)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	recent = head(recent, RecentShipmentsSize)
	return GetDashboardQueryResponse{
		Tiles:       tiles,
		Recent:      recent,
		LiveFeed:    feed(head(recent, LiveFeedSize)),
		FleetAgents: fleet,
	}, nil
}

func head(list []shipment.Shipment, n int) []shipment.Shipment {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func feed(list []shipment.Shipment) []FeedItem {
	items := make([]FeedItem, 0, len(list))
	for _, s := range list {
		items = append(items, FeedItem{
			TrackingNumber: s.TrackingNumber,
			StatusLabel:    s.Status.Label(),
			At:             s.LastActivity(),
		})
	}
	return items
}

