package services_test

import (
	"context"
	"testing"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/dpackchain/package_tracking_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeShipmentAction(t *testing.T) {
	ctx := context.Background()
	authorizer := services.NewShipmentAuthorizer()

	shipment := testShipment("DPC-1234-5678-90", domain.StatusInTransit, true)
	withWallet := testShipment("DPC-1234-5678-91", domain.StatusInTransit, true)
	withWallet.ReceiverWallet = "0xabc123"

	testCases := []struct {
		name      string
		actor     string
		shipment  *domain.Shipment
		action    domain.ShipmentAction
		expectErr bool
	}{
		{name: "anyone may register", actor: "mallory", shipment: nil, action: domain.ActionRegister, expectErr: false},
		{name: "anyone may query", actor: "mallory", shipment: shipment, action: domain.ActionQuery, expectErr: false},
		{name: "sender may update status", actor: "alice", shipment: shipment, action: domain.ActionUpdateStatus, expectErr: false},
		{name: "receiver may not update status", actor: "bob", shipment: shipment, action: domain.ActionUpdateStatus, expectErr: true},
		{name: "stranger may not update status", actor: "mallory", shipment: shipment, action: domain.ActionUpdateStatus, expectErr: true},
		{name: "receiver may confirm delivery", actor: "bob", shipment: shipment, action: domain.ActionConfirmDelivery, expectErr: false},
		{name: "wallet holder may confirm delivery", actor: "0xabc123", shipment: withWallet, action: domain.ActionConfirmDelivery, expectErr: false},
		{name: "sender may not confirm delivery", actor: "alice", shipment: shipment, action: domain.ActionConfirmDelivery, expectErr: true},
		{name: "stranger may not confirm delivery", actor: "mallory", shipment: shipment, action: domain.ActionConfirmDelivery, expectErr: true},
		{name: "empty wallet never matches empty actor", actor: "", shipment: shipment, action: domain.ActionConfirmDelivery, expectErr: true},
		{name: "unknown action is rejected", actor: "alice", shipment: shipment, action: domain.ShipmentAction("repaint"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := authorizer.AuthorizeShipmentAction(ctx, tc.actor, tc.shipment, tc.action)
			if tc.expectErr {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
