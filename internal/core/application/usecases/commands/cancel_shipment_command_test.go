package commands_test

import (
	"errors"
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelShipmentCommand(t *testing.T) {
	cmd, err := commands.NewCancelShipmentCommand("p-1", "u-1")
	require.NoError(t, err)

	assert.Equal(t, "p-1", cmd.ShipmentID())
	assert.Equal(t, "u-1", cmd.ActorID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCancelShipmentCommand_BlankShipmentID(t *testing.T) {
	_, err := commands.NewCancelShipmentCommand("  ", "u-1")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCancelShipmentCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CancelShipmentCommand

	err := cmd.Validate()
	assert.True(t, errors.Is(err, commands.ErrCancelShipmentCommandIsNotConstructed))
}
