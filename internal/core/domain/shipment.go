package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatus is the enumerated stage of a shipment's journey. The numeric
// codes are part of the external contract and must not be reordered.
type ShipmentStatus int

const (
	StatusRegistered     ShipmentStatus = 0
	StatusPickedUp       ShipmentStatus = 1
	StatusInTransit      ShipmentStatus = 2
	StatusOutForDelivery ShipmentStatus = 3
	StatusDelivered      ShipmentStatus = 4
	StatusException      ShipmentStatus = 5
)

// String returns the display name of the status.
func (s ShipmentStatus) String() string {
	switch s {
	case StatusRegistered:
		return "REGISTERED"
	case StatusPickedUp:
		return "PICKED_UP"
	case StatusInTransit:
		return "IN_TRANSIT"
	case StatusOutForDelivery:
		return "OUT_FOR_DELIVERY"
	case StatusDelivered:
		return "DELIVERED"
	case StatusException:
		return "EXCEPTION"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether s is one of the defined status codes.
func (s ShipmentStatus) IsValid() bool {
	return s >= StatusRegistered && s <= StatusException
}

// IsTerminal reports whether no further mutation is permitted from s.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusException
}

// CanTransitionTo reports whether a shipment currently at s may move to next.
// Statuses only move forward; StatusException is reachable from any
// non-terminal state. Repeating the current status is not a transition.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == StatusException {
		return true
	}
	return next > s
}

// Shipment is the authoritative record for one tracking identifier. All
// descriptive fields are immutable after registration; only Status and
// IsActive change, and only through authorized transitions.
type Shipment struct {
	TrackingID        string          `json:"trackingID"`
	Sender            string          `json:"sender"`
	Receiver          string          `json:"receiver"`
	ReceiverWallet    string          `json:"receiverWallet,omitempty"` // optional second identity allowed to confirm delivery
	Description       string          `json:"description"`
	SenderAddress     string          `json:"senderAddress"`
	ReceiverAddress   string          `json:"receiverAddress"`
	Weight            decimal.Decimal `json:"weight"` // grams
	Dimensions        string          `json:"dimensions"`
	Status            ShipmentStatus  `json:"status"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// StatusUpdate is one immutable entry in a shipment's append-only history.
// Seq is the insertion index within the shipment, starting at 0 for the
// synthetic entry written at registration.
type StatusUpdate struct {
	TrackingID string         `json:"trackingID"`
	Seq        int            `json:"seq"`
	Status     ShipmentStatus `json:"status"`
	Location   string         `json:"location"`
	Notes      string         `json:"notes"`
	Timestamp  time.Time      `json:"timestamp"`
}
