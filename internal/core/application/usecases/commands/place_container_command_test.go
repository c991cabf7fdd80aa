package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceContainerCommand_ValidInput(t *testing.T) {
	itemID := kernel.NewUUID()
	qty := mustQuantity(t, "1.82")
	cmd, err := commands.NewPlaceContainerCommand(itemID, "C1", qty)
	require.NoError(t, err)
	assert.Equal(t, itemID, cmd.OrderItemID())
	assert.Equal(t, "C1", cmd.Number())
	assert.True(t, qty.IsEqual(cmd.Quantity()))
}

func TestNewPlaceContainerCommand_EmptyNumber(t *testing.T) {
	_, err := commands.NewPlaceContainerCommand(kernel.NewUUID(), "", mustQuantity(t, "1.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceContainerCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewPlaceContainerCommand(kernel.NewUUID(), "C1", kernel.ZeroQuantity())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceContainerCommand_UnconstructedQuantity(t *testing.T) {
	_, err := commands.NewPlaceContainerCommand(kernel.NewUUID(), "C1", kernel.Quantity{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrQuantityIsNotConstructed)
}

func TestNewChangeContainerQuantityCommand_ValidInput(t *testing.T) {
	containerID := kernel.NewUUID()
	qty := mustQuantity(t, "0.50")
	cmd, err := commands.NewChangeContainerQuantityCommand(containerID, qty)
	require.NoError(t, err)
	assert.Equal(t, containerID, cmd.ContainerID())
	assert.True(t, qty.IsEqual(cmd.Quantity()))
}

func TestNewChangeContainerQuantityCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewChangeContainerQuantityCommand(kernel.NewUUID(), kernel.ZeroQuantity())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
