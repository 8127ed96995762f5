package services

import (
	"context"
	"fmt"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
)

// shipmentAuthorizerImpl implements the ShipmentAuthorizerSvc interface.
//
// Policy:
//   - register: any caller (the caller becomes the sender)
//   - updateStatus: the shipment's sender only
//   - confirmDelivery: the shipment's receiver, or the holder of the
//     receiver wallet when one is set
//   - query: any caller
type shipmentAuthorizerImpl struct{}

// NewShipmentAuthorizer creates the default shipment authorizer.
func NewShipmentAuthorizer() portssvc.ShipmentAuthorizerSvc {
	return &shipmentAuthorizerImpl{}
}

var _ portssvc.ShipmentAuthorizerSvc = (*shipmentAuthorizerImpl)(nil)

func (a *shipmentAuthorizerImpl) AuthorizeShipmentAction(ctx context.Context, actor string, shipment *domain.Shipment, action domain.ShipmentAction) error {
	switch action {
	case domain.ActionRegister, domain.ActionQuery:
		return nil
	case domain.ActionUpdateStatus:
		if shipment != nil && actor == shipment.Sender {
			return nil
		}
	case domain.ActionConfirmDelivery:
		if shipment != nil && (actor == shipment.Receiver || (shipment.ReceiverWallet != "" && actor == shipment.ReceiverWallet)) {
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown action %q for actor %s", apperrors.ErrForbidden, action, actor)
	}
	return fmt.Errorf("%w: actor %s may not perform %s", apperrors.ErrForbidden, actor, action)
}
