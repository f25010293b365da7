package stats_test

import (
	"testing"

	"shipdesk/internal/core/domain/model/stats"

	"github.com/stretchr/testify/assert"
)

func TestTile_DisplayValue(t *testing.T) {
	assert.Equal(t, "0", stats.Tile{}.DisplayValue())
	assert.Equal(t, "999", stats.Tile{Value: 999}.DisplayValue())
	assert.Equal(t, "12,480", stats.Tile{Value: 12480}.DisplayValue())
	assert.Equal(t, "1,000,000", stats.Tile{Value: 1000000}.DisplayValue())
}

func TestTile_Change(t *testing.T) {
	up := stats.Tile{Change: "+12%"}
	down := stats.Tile{Change: "-5%"}
	none := stats.Tile{}

	assert.True(t, up.HasChange())
	assert.True(t, up.Positive())
	assert.False(t, down.Positive())
	assert.False(t, none.HasChange())
	assert.False(t, none.Positive())
}
