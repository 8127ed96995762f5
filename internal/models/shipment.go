package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment is the database representation of a shipment row.
type Shipment struct {
	TrackingID        string
	Sender            string
	Receiver          string
	ReceiverWallet    string
	Description       string
	SenderAddress     string
	ReceiverAddress   string
	Weight            decimal.Decimal
	Dimensions        string
	Status            int
	IsActive          bool
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

// StatusUpdate is the database representation of one status history row.
type StatusUpdate struct {
	TrackingID string
	Seq        int
	Status     int
	Location   string
	Notes      string
	Timestamp  time.Time
}
