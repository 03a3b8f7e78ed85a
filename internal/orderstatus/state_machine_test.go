package orderstatus

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCan(t *testing.T) {
	tests := []struct {
		status  model.OrderStatus
		confirm bool
		ship    bool
		cancel  bool
	}{
		{model.OrderStatusPending, true, true, true},
		{model.OrderStatusConfirmed, true, true, true},
		{model.OrderStatusShipped, false, true, true},
		{model.OrderStatusDelivered, false, false, false},
		{model.OrderStatusCancelled, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			require.Equal(t, tt.confirm, Can(tt.status, ActionConfirm))
			require.Equal(t, tt.ship, Can(tt.status, ActionShip))
			require.Equal(t, tt.cancel, Can(tt.status, ActionCancel))
		})
	}
}

func TestCan_UnknownStatusOrAction(t *testing.T) {
	require.False(t, Can(model.OrderStatus("REFUNDED"), ActionConfirm))
	require.False(t, Can(model.OrderStatusPending, Action("archive")))
}

func TestAllowedActions(t *testing.T) {
	require.Equal(t, []Action{ActionConfirm, ActionShip, ActionCancel}, AllowedActions(model.OrderStatusPending))
	require.Equal(t, []Action{ActionConfirm, ActionShip, ActionCancel}, AllowedActions(model.OrderStatusConfirmed))
	require.Equal(t, []Action{ActionShip, ActionCancel}, AllowedActions(model.OrderStatusShipped))
	require.Empty(t, AllowedActions(model.OrderStatusDelivered))
	require.Empty(t, AllowedActions(model.OrderStatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	require.True(t, IsTerminal(model.OrderStatusDelivered))
	require.True(t, IsTerminal(model.OrderStatusCancelled))
	require.False(t, IsTerminal(model.OrderStatusPending))
	require.False(t, IsTerminal(model.OrderStatusConfirmed))
	require.False(t, IsTerminal(model.OrderStatusShipped))
}

func TestTarget(t *testing.T) {
	require.Equal(t, model.OrderStatusConfirmed, Target(ActionConfirm))
	require.Equal(t, model.OrderStatusShipped, Target(ActionShip))
	require.Equal(t, model.OrderStatusCancelled, Target(ActionCancel))
}

func TestBadgeFor(t *testing.T) {
	require.Equal(t, "EN ATTENTE", BadgeFor(model.OrderStatusPending).Label)
	require.Equal(t, "LIVRÉE", BadgeFor(model.OrderStatusDelivered).Label)
	require.Equal(t, "UNKNOWN", BadgeFor("").Label)
	require.Equal(t, "REFUNDED", BadgeFor(model.OrderStatus("REFUNDED")).Label)
}
