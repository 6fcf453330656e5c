package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},

		// No skipping ahead or going back mid-flow.
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusReady, OrderStatusPreparing, false},
		{OrderStatusDelivered, OrderStatusReady, false},

		// Reset to pending from any non-pending state; no terminal state.
		{OrderStatusPreparing, OrderStatusPending, true},
		{OrderStatusReady, OrderStatusPending, true},
		{OrderStatusDelivered, OrderStatusPending, true},
		{OrderStatusFailed, OrderStatusPending, true},
		{OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusNext(t *testing.T) {
	next, ok := OrderStatusPending.Next()
	require.True(t, ok)
	require.Equal(t, OrderStatusPreparing, next)

	_, ok = OrderStatusDelivered.Next()
	require.False(t, ok, "delivered has no forward step, only a reset")

	_, ok = OrderStatusFailed.Next()
	require.False(t, ok)
}
