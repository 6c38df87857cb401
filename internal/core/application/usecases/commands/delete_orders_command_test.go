package commands_test

import (
	"testing"

	"shoporders/internal/core/application/usecases/commands"
	"shoporders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrdersCommand(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewDeleteOrdersCommand(ids)
	require.NoError(t, err)
	assert.Equal(t, ids, cmd.OrderIDs())
	require.NoError(t, cmd.Validate())
}

func TestNewDeleteOrdersCommand_EmptyIDs(t *testing.T) {
	_, err := commands.NewDeleteOrdersCommand(nil)
	require.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)

	_, err = commands.NewDeleteOrdersCommand([]kernel.UUID{})
	require.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)
}

func TestNewDeleteOrdersCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteOrdersCommand([]kernel.UUID{kernel.NewUUID(), {}})
	require.Error(t, err)
}

func TestDeleteOrdersCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.DeleteOrdersCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteOrdersCommandIsNotConstructed)
}
