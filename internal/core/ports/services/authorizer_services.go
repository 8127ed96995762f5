package services

import (
	"context"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
)

// ShipmentAuthorizerSvc decides which actor may perform which action on a
// shipment. A denial is apperrors.ErrForbidden wrapped with the actor and
// action for observability, never a generic error.
type ShipmentAuthorizerSvc interface {
	AuthorizeShipmentAction(ctx context.Context, actor string, shipment *domain.Shipment, action domain.ShipmentAction) error
}

// TrackingIDGeneratorSvc produces fresh human-readable tracking identifiers.
// Uniqueness against stored shipments is enforced by the store's
// compare-and-insert create, not by the generator itself.
type TrackingIDGeneratorSvc interface {
	Generate() (string, error)
}
