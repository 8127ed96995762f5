package repositories

import (
	"context"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
)

// ShipmentReader defines read operations for shipment data
type ShipmentReader interface {
	// FindShipmentByTrackingID retrieves the authoritative record for one tracking ID.
	FindShipmentByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error)

	// ListTrackingIDsBySender returns the tracking IDs registered by sender, in registration order.
	ListTrackingIDsBySender(ctx context.Context, sender string) ([]string, error)

	// ListTrackingIDsByReceiver returns the tracking IDs addressed to receiver, in registration order.
	ListTrackingIDsByReceiver(ctx context.Context, receiver string) ([]string, error)

	// CountShipments returns the total number of shipments ever created.
	CountShipments(ctx context.Context) (int64, error)
}

// ShipmentWriter defines write operations for shipment data
type ShipmentWriter interface {
	// SaveShipment persists a new shipment together with its synthetic initial
	// status update. Returns apperrors.ErrDuplicate if the tracking ID is
	// already taken; the insert is compare-and-insert so concurrent callers
	// cannot both claim the same ID.
	SaveShipment(ctx context.Context, shipment domain.Shipment, initial domain.StatusUpdate) error

	// UpdateShipmentStatus sets the live status/isActive fields and appends
	// one history entry as a single atomic change.
	UpdateShipmentStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, isActive bool, update domain.StatusUpdate) error
}

// StatusLedgerReader defines read operations for the append-only status history
type StatusLedgerReader interface {
	// FindStatusUpdates returns the full history for a shipment in append
	// order. Returns apperrors.ErrNotFound if the shipment does not exist.
	FindStatusUpdates(ctx context.Context, trackingID string) ([]domain.StatusUpdate, error)
}

// ShipmentRepositoryFacade combines all shipment-related repository interfaces
// This is a facade for clients that need access to all operations
type ShipmentRepositoryFacade interface {
	ShipmentReader
	ShipmentWriter
	StatusLedgerReader
}
