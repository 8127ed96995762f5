package dto

import (
	"time"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterShipmentRequest defines the data needed to register a new shipment.
// The caller becomes the shipment's sender. TrackingID is optional: when
// omitted the service generates one; a supplied value is used as-is (the
// original flow pre-generates the ID on the client side).
type RegisterShipmentRequest struct {
	TrackingID        *string         `json:"trackingID"`
	Receiver          string          `json:"receiver" binding:"required"`
	ReceiverWallet    string          `json:"receiverWallet"` // Optional
	Description       string          `json:"description" binding:"required"`
	SenderAddress     string          `json:"senderAddress" binding:"required"`
	ReceiverAddress   string          `json:"receiverAddress" binding:"required"`
	Weight            decimal.Decimal `json:"weight" binding:"required"` // grams, must be > 0
	Dimensions        string          `json:"dimensions" binding:"required"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery" binding:"required"`
}

// UpdateStatusRequest defines a status transition on an existing shipment.
type UpdateStatusRequest struct {
	Status   domain.ShipmentStatus `json:"status" binding:"required,statuscode"`
	Location string                `json:"location" binding:"required"`
	Notes    string                `json:"notes"`
}

// ShipmentResponse defines the data returned for a shipment.
// Mirrors domain.Shipment.
type ShipmentResponse struct {
	TrackingID        string          `json:"trackingID"`
	Sender            string          `json:"sender"`
	Receiver          string          `json:"receiver"`
	ReceiverWallet    string          `json:"receiverWallet,omitempty"`
	Description       string          `json:"description"`
	SenderAddress     string          `json:"senderAddress"`
	ReceiverAddress   string          `json:"receiverAddress"`
	Weight            decimal.Decimal `json:"weight"`
	Dimensions        string          `json:"dimensions"`
	Status            int             `json:"status"`
	StatusLabel       string          `json:"statusLabel"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// StatusUpdateResponse defines one history entry in a shipment's timeline.
type StatusUpdateResponse struct {
	Seq         int       `json:"seq"`
	Status      int       `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackingResponse is a shipment together with its full status history.
type TrackingResponse struct {
	Shipment ShipmentResponse       `json:"shipment"`
	History  []StatusUpdateResponse `json:"history"`
}

// RegisterShipmentResponse is returned on successful registration.
type RegisterShipmentResponse struct {
	TrackingID string `json:"trackingID"`
}

// ListShipmentsResponse holds a party's tracking IDs in registration order.
type ListShipmentsResponse struct {
	TrackingIDs []string `json:"trackingIDs"`
}

// CountShipmentsResponse holds the total number of shipments ever registered.
type CountShipmentsResponse struct {
	Total int64 `json:"total"`
}

// ToShipmentResponse converts a domain.Shipment to ShipmentResponse DTO
func ToShipmentResponse(s *domain.Shipment) ShipmentResponse {
	return ShipmentResponse{
		TrackingID:        s.TrackingID,
		Sender:            s.Sender,
		Receiver:          s.Receiver,
		ReceiverWallet:    s.ReceiverWallet,
		Description:       s.Description,
		SenderAddress:     s.SenderAddress,
		ReceiverAddress:   s.ReceiverAddress,
		Weight:            s.Weight,
		Dimensions:        s.Dimensions,
		Status:            int(s.Status),
		StatusLabel:       s.Status.String(),
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		EstimatedDelivery: s.EstimatedDelivery,
	}
}

// ToStatusUpdateResponse converts a domain.StatusUpdate to its DTO
func ToStatusUpdateResponse(u domain.StatusUpdate) StatusUpdateResponse {
	return StatusUpdateResponse{
		Seq:         u.Seq,
		Status:      int(u.Status),
		StatusLabel: u.Status.String(),
		Location:    u.Location,
		Notes:       u.Notes,
		Timestamp:   u.Timestamp,
	}
}

// ToTrackingResponse composes a shipment and its history into one response.
func ToTrackingResponse(s *domain.Shipment, history []domain.StatusUpdate) TrackingResponse {
	updates := make([]StatusUpdateResponse, len(history))
	for i, u := range history {
		updates[i] = ToStatusUpdateResponse(u)
	}
	return TrackingResponse{
		Shipment: ToShipmentResponse(s),
		History:  updates,
	}
}
