package commands_test

import (
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignCourierCommand(t *testing.T) {
	cmd, err := commands.NewAssignCourierCommand("p-1", "c-9", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "p-1", cmd.ShipmentID())
	assert.Equal(t, "c-9", cmd.CourierID())
	assert.Equal(t, "admin-1", cmd.ActorID())
	assert.NoError(t, cmd.Validate())
}

func TestNewAssignCourierCommand_MissingIDs(t *testing.T) {
	tests := []struct {
		name       string
		shipmentID string
		courierID  string
		param      string
	}{
		{name: "no shipment", shipmentID: "", courierID: "c-9", param: "shipmentID"},
		{name: "no courier", shipmentID: "p-1", courierID: "", param: "courierID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewAssignCourierCommand(tt.shipmentID, tt.courierID, "admin-1")

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestAssignCourierCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.AssignCourierCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignCourierCommandIsNotConstructed)
}
