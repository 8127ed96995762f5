package domain

import "time"

// EventKind identifies the mutation that produced a ShipmentEvent.
type EventKind string

const (
	EventShipmentRegistered    EventKind = "ShipmentRegistered"
	EventShipmentStatusUpdated EventKind = "ShipmentStatusUpdated"
	EventShipmentDelivered     EventKind = "ShipmentDelivered"
)

// ShipmentEvent is the outbound notification emitted after each successful
// mutation, consumed by an external indexing layer. Fields not relevant to a
// given kind are left at their zero values. Per-shipment emission order equals
// mutation order.
type ShipmentEvent struct {
	EventID     string         `json:"eventID"`
	Kind        EventKind      `json:"kind"`
	TrackingID  string         `json:"trackingID"`
	Sender      string         `json:"sender,omitempty"`
	Receiver    string         `json:"receiver,omitempty"`
	Description string         `json:"description,omitempty"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}
