package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/dpackchain/package_tracking_app/internal/adapters/database/memory"
	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MemoryShipmentRepositoryTestSuite struct {
	suite.Suite
	repo *memory.ShipmentRepository
	ctx  context.Context
}

func (suite *MemoryShipmentRepositoryTestSuite) SetupTest() {
	suite.repo = memory.NewShipmentRepository()
	suite.ctx = context.Background()
}

func newShipment(trackingID, sender, receiver string) domain.Shipment {
	return domain.Shipment{
		TrackingID:        trackingID,
		Sender:            sender,
		Receiver:          receiver,
		Description:       "Books",
		SenderAddress:     "1 Depot Way",
		ReceiverAddress:   "9 Harbour St",
		Weight:            decimal.NewFromInt(500),
		Dimensions:        "20x15x10 cm",
		Status:            domain.StatusRegistered,
		IsActive:          true,
		CreatedAt:         time.Now(),
		EstimatedDelivery: time.Now().Add(48 * time.Hour),
	}
}

func initialUpdate(trackingID string) domain.StatusUpdate {
	return domain.StatusUpdate{
		TrackingID: trackingID,
		Status:     domain.StatusRegistered,
		Location:   "1 Depot Way",
		Notes:      "Shipment registered",
		Timestamp:  time.Now(),
	}
}

func (suite *MemoryShipmentRepositoryTestSuite) TestSaveAndFind() {
	shipment := newShipment("DPC-1111-1111-11", "alice", "bob")

	err := suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID))
	suite.Require().NoError(err)

	found, err := suite.repo.FindShipmentByTrackingID(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Equal(shipment.TrackingID, found.TrackingID)
	suite.Equal("alice", found.Sender)
	suite.Equal(domain.StatusRegistered, found.Status)
	suite.True(found.IsActive)

	history, err := suite.repo.FindStatusUpdates(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(0, history[0].Seq)
	suite.Equal(domain.StatusRegistered, history[0].Status)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestSaveShipment_Duplicate() {
	shipment := newShipment("DPC-1111-1111-11", "alice", "bob")

	err := suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID))
	suite.Require().NoError(err)

	err = suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID))
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	// The failed insert must not disturb the count or the indices.
	total, err := suite.repo.CountShipments(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)

	ids, err := suite.repo.ListTrackingIDsBySender(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal([]string{"DPC-1111-1111-11"}, ids)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestFindShipmentByTrackingID_NotFound() {
	_, err := suite.repo.FindShipmentByTrackingID(suite.ctx, "DPC-0000-0000-00")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repo.FindStatusUpdates(suite.ctx, "DPC-0000-0000-00")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestListTrackingIDs_RegistrationOrder() {
	first := newShipment("DPC-1111-1111-11", "alice", "bob")
	second := newShipment("DPC-2222-2222-22", "alice", "carol")
	third := newShipment("DPC-3333-3333-33", "dave", "bob")

	for _, s := range []domain.Shipment{first, second, third} {
		suite.Require().NoError(suite.repo.SaveShipment(suite.ctx, s, initialUpdate(s.TrackingID)))
	}

	bySender, err := suite.repo.ListTrackingIDsBySender(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal([]string{"DPC-1111-1111-11", "DPC-2222-2222-22"}, bySender)

	byReceiver, err := suite.repo.ListTrackingIDsByReceiver(suite.ctx, "bob")
	suite.Require().NoError(err)
	suite.Equal([]string{"DPC-1111-1111-11", "DPC-3333-3333-33"}, byReceiver)

	none, err := suite.repo.ListTrackingIDsBySender(suite.ctx, "nobody")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestUpdateShipmentStatus() {
	shipment := newShipment("DPC-1111-1111-11", "alice", "bob")
	suite.Require().NoError(suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID)))

	update := domain.StatusUpdate{
		TrackingID: shipment.TrackingID,
		Status:     domain.StatusInTransit,
		Location:   "Hamburg hub",
		Notes:      "Loaded onto truck",
		Timestamp:  time.Now(),
	}
	err := suite.repo.UpdateShipmentStatus(suite.ctx, shipment.TrackingID, domain.StatusInTransit, true, update)
	suite.Require().NoError(err)

	found, err := suite.repo.FindShipmentByTrackingID(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusInTransit, found.Status)
	suite.True(found.IsActive)

	// History grows by one and sequence numbers stay dense.
	history, err := suite.repo.FindStatusUpdates(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(0, history[0].Seq)
	suite.Equal(1, history[1].Seq)
	suite.Equal("Hamburg hub", history[1].Location)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestUpdateShipmentStatus_Deactivates() {
	shipment := newShipment("DPC-1111-1111-11", "alice", "bob")
	suite.Require().NoError(suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID)))

	update := domain.StatusUpdate{
		TrackingID: shipment.TrackingID,
		Status:     domain.StatusDelivered,
		Location:   "9 Harbour St",
		Notes:      "Delivery confirmed by receiver",
		Timestamp:  time.Now(),
	}
	err := suite.repo.UpdateShipmentStatus(suite.ctx, shipment.TrackingID, domain.StatusDelivered, false, update)
	suite.Require().NoError(err)

	found, err := suite.repo.FindShipmentByTrackingID(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDelivered, found.Status)
	suite.False(found.IsActive)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestUpdateShipmentStatus_NotFound() {
	err := suite.repo.UpdateShipmentStatus(suite.ctx, "DPC-0000-0000-00", domain.StatusInTransit, true, domain.StatusUpdate{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestCountShipments() {
	total, err := suite.repo.CountShipments(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), total)

	for _, id := range []string{"DPC-1111-1111-11", "DPC-2222-2222-22"} {
		s := newShipment(id, "alice", "bob")
		suite.Require().NoError(suite.repo.SaveShipment(suite.ctx, s, initialUpdate(id)))
	}

	total, err = suite.repo.CountShipments(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestReturnedHistoryIsACopy() {
	shipment := newShipment("DPC-1111-1111-11", "alice", "bob")
	suite.Require().NoError(suite.repo.SaveShipment(suite.ctx, shipment, initialUpdate(shipment.TrackingID)))

	history, err := suite.repo.FindStatusUpdates(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	history[0].Notes = "tampered"

	again, err := suite.repo.FindStatusUpdates(suite.ctx, shipment.TrackingID)
	suite.Require().NoError(err)
	suite.Equal("Shipment registered", again[0].Notes)
}

func (suite *MemoryShipmentRepositoryTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.repo.SaveShipment(ctx, newShipment("DPC-1111-1111-11", "alice", "bob"), domain.StatusUpdate{})
	suite.ErrorIs(err, context.Canceled)

	_, err = suite.repo.FindShipmentByTrackingID(ctx, "DPC-1111-1111-11")
	suite.ErrorIs(err, context.Canceled)
}

func TestMemoryShipmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryShipmentRepositoryTestSuite))
}
