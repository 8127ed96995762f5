package services

import (
	"context"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/dpackchain/package_tracking_app/internal/dto"
)

// ShipmentReaderSvc defines read operations for shipment data
type ShipmentReaderSvc interface {
	// GetShipment retrieves a shipment and its full status history.
	GetShipment(ctx context.Context, trackingID string) (*domain.Shipment, []domain.StatusUpdate, error)

	// ListShipmentsBySender returns tracking IDs registered by sender, in registration order.
	ListShipmentsBySender(ctx context.Context, sender string) ([]string, error)

	// ListShipmentsByReceiver returns tracking IDs addressed to receiver, in registration order.
	ListShipmentsByReceiver(ctx context.Context, receiver string) ([]string, error)

	// TotalShipments returns the total number of shipments ever registered.
	TotalShipments(ctx context.Context) (int64, error)
}

// ShipmentWriterSvc defines mutating operations for shipment data
type ShipmentWriterSvc interface {
	// RegisterShipment creates a new shipment owned by actor and returns it.
	RegisterShipment(ctx context.Context, req dto.RegisterShipmentRequest, actor string) (*domain.Shipment, error)

	// UpdateShipmentStatus moves a shipment to a forward status. Only the
	// shipment's sender may call it.
	UpdateShipmentStatus(ctx context.Context, trackingID string, req dto.UpdateStatusRequest, actor string) error

	// ConfirmDelivery marks a shipment delivered. Only the shipment's
	// receiver (or the holder of its receiver wallet) may call it.
	ConfirmDelivery(ctx context.Context, trackingID string, actor string) error
}

// ShipmentSvcFacade combines all shipment-related service interfaces
type ShipmentSvcFacade interface {
	ShipmentReaderSvc
	ShipmentWriterSvc
}
