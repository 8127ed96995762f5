package domain_test

import (
	"testing"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShipmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.ShipmentStatus
		to   domain.ShipmentStatus
		want bool
	}{
		{name: "registered to picked up", from: domain.StatusRegistered, to: domain.StatusPickedUp, want: true},
		{name: "registered straight to delivered", from: domain.StatusRegistered, to: domain.StatusDelivered, want: true},
		{name: "picked up to in transit", from: domain.StatusPickedUp, to: domain.StatusInTransit, want: true},
		{name: "in transit to out for delivery", from: domain.StatusInTransit, to: domain.StatusOutForDelivery, want: true},
		{name: "out for delivery to delivered", from: domain.StatusOutForDelivery, to: domain.StatusDelivered, want: true},
		{name: "exception reachable from registered", from: domain.StatusRegistered, to: domain.StatusException, want: true},
		{name: "exception reachable from out for delivery", from: domain.StatusOutForDelivery, to: domain.StatusException, want: true},
		{name: "no backward move", from: domain.StatusInTransit, to: domain.StatusPickedUp, want: false},
		{name: "repeating current status is not a transition", from: domain.StatusInTransit, to: domain.StatusInTransit, want: false},
		{name: "delivered is terminal", from: domain.StatusDelivered, to: domain.StatusException, want: false},
		{name: "exception is terminal", from: domain.StatusException, to: domain.StatusDelivered, want: false},
		{name: "undefined target status", from: domain.StatusRegistered, to: domain.ShipmentStatus(9), want: false},
		{name: "negative target status", from: domain.StatusRegistered, to: domain.ShipmentStatus(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShipmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusRegistered.IsTerminal())
	assert.False(t, domain.StatusPickedUp.IsTerminal())
	assert.False(t, domain.StatusInTransit.IsTerminal())
	assert.False(t, domain.StatusOutForDelivery.IsTerminal())
	assert.True(t, domain.StatusDelivered.IsTerminal())
	assert.True(t, domain.StatusException.IsTerminal())
}

func TestShipmentStatus_String(t *testing.T) {
	tests := []struct {
		status domain.ShipmentStatus
		want   string
	}{
		{domain.StatusRegistered, "REGISTERED"},
		{domain.StatusPickedUp, "PICKED_UP"},
		{domain.StatusInTransit, "IN_TRANSIT"},
		{domain.StatusOutForDelivery, "OUT_FOR_DELIVERY"},
		{domain.StatusDelivered, "DELIVERED"},
		{domain.StatusException, "EXCEPTION"},
		{domain.ShipmentStatus(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}
