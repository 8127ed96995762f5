package services

import (
	"context"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
)

// EventPublisherSvc is the outbound notification port. Publishing is
// fire-and-forget from the shipment service's point of view: a publish
// failure is logged, never propagated to the mutating caller.
type EventPublisherSvc interface {
	// PublishShipmentEvent emits one event. Implementations must preserve
	// per-shipment emission order relative to call order.
	PublishShipmentEvent(ctx context.Context, event domain.ShipmentEvent) error
}
