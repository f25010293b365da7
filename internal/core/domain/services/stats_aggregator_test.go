package services_test

import (
	"testing"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = principal.User{ID: "a-1", Name: "Ada", Role: principal.Admin}
	customer = principal.User{ID: "c-1", Name: "Cy", Role: principal.Customer}
	courier  = principal.User{ID: "k-1", Name: "Kim", Role: principal.Courier}
)

func labels(tiles []stats.Tile) []string {
	out := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		out = append(out, tile.Label)
	}
	return out
}

func TestStatsAggregator_Admin(t *testing.T) {
	agg := &stats.DashboardStats{
		TotalPackages:     1520,
		InTransitPackages: 310,
		DeliveredPackages: 1100,
		CreatedPackages:   90,
		TotalCouriers:     14,
	}

	tiles, err := services.NewStatsAggregator().ComputeStats(admin, services.StatsSource{Aggregate: agg})

	require.NoError(t, err)
	assert.Equal(t, []string{"Total Shipments", "In Transit", "Delivered", "Created"}, labels(tiles))
	assert.Equal(t, int64(1520), tiles[0].Value)
	assert.Equal(t, int64(310), tiles[1].Value)
	assert.Equal(t, int64(1100), tiles[2].Value)
	assert.Equal(t, int64(90), tiles[3].Value)
	assert.Equal(t, "1,520", tiles[0].DisplayValue())
	for _, tile := range tiles {
		assert.True(t, tile.HasChange(), tile.Label)
	}
	assert.Equal(t, stats.ColorOrange, tiles[3].Color)
	assert.False(t, tiles[3].Positive())
}

func TestStatsAggregator_AdminWithoutAggregate(t *testing.T) {
	shipments := []shipment.Shipment{{Status: shipment.Created}}

	tiles, err := services.NewStatsAggregator().ComputeStats(admin, services.StatsSource{Shipments: shipments})

	require.ErrorIs(t, err, services.ErrAggregateRequired)
	assert.Nil(t, tiles)
}

func TestStatsAggregator_NonAdmin(t *testing.T) {
	shipments := []shipment.Shipment{
		{Status: shipment.Created},
		{Status: shipment.Delivered},
		{Status: shipment.Delivered},
	}

	for _, user := range []principal.User{customer, courier} {
		t.Run(user.Role.String(), func(t *testing.T) {
			tiles, err := services.NewStatsAggregator().ComputeStats(user, services.StatsSource{Shipments: shipments})

			require.NoError(t, err)
			assert.Equal(t, []string{"My Shipments", "In Transit", "Delivered", "Pending"}, labels(tiles))
			assert.Equal(t, int64(3), tiles[0].Value)
			assert.Equal(t, int64(0), tiles[1].Value)
			assert.Equal(t, int64(2), tiles[2].Value)
			assert.Equal(t, int64(1), tiles[3].Value)
			for _, tile := range tiles {
				assert.False(t, tile.HasChange(), tile.Label)
			}
		})
	}
}

func TestStatsAggregator_NonAdminIgnoresAggregate(t *testing.T) {
	agg := &stats.DashboardStats{TotalPackages: 99}

	tiles, err := services.NewStatsAggregator().ComputeStats(customer, services.StatsSource{Aggregate: agg})

	require.NoError(t, err)
	assert.Equal(t, int64(0), tiles[0].Value)
}

func TestStatsAggregator_IsDeterministic(t *testing.T) {
	source := services.StatsSource{Shipments: []shipment.Shipment{
		{Status: shipment.InTransit},
		{Status: shipment.PickedUp},
		{Status: shipment.Cancelled},
	}}
	aggregator := services.NewStatsAggregator()

	first, err := aggregator.ComputeStats(customer, source)
	require.NoError(t, err)
	second, err := aggregator.ComputeStats(customer, source)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
