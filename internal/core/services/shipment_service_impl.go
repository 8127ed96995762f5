package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portsrepo "github.com/dpackchain/package_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
	"github.com/dpackchain/package_tracking_app/internal/dto"
	"github.com/dpackchain/package_tracking_app/internal/utils/trackingid"
	"github.com/google/uuid"
)

// maxTrackingIDAttempts bounds the regeneration loop on a generator/store
// collision. Collisions are vanishingly rare; hitting the bound means the
// generator is broken, not that the caller should retry.
const maxTrackingIDAttempts = 5

const (
	registeredNotes        = "Shipment registered"
	deliveryConfirmedNotes = "Delivery confirmed by receiver"
)

// shipmentServiceImpl implements the ShipmentSvcFacade interface
type shipmentServiceImpl struct {
	BaseService
	shipmentRepo portsrepo.ShipmentRepositoryFacade
	authorizer   portssvc.ShipmentAuthorizerSvc
	idGenerator  portssvc.TrackingIDGeneratorSvc
	publisher    portssvc.EventPublisherSvc
	locks        *keyedMutex
}

// ShipmentServiceOption is a functional option for configuring the shipment service
type ShipmentServiceOption func(*shipmentServiceImpl)

// WithShipmentAuthorizerImpl overrides the default authorizer
func WithShipmentAuthorizerImpl(authorizer portssvc.ShipmentAuthorizerSvc) ShipmentServiceOption {
	return func(s *shipmentServiceImpl) {
		s.authorizer = authorizer
	}
}

// WithTrackingIDGeneratorImpl overrides the default tracking ID generator
func WithTrackingIDGeneratorImpl(gen portssvc.TrackingIDGeneratorSvc) ShipmentServiceOption {
	return func(s *shipmentServiceImpl) {
		s.idGenerator = gen
	}
}

// WithEventPublisherImpl sets the outbound event publisher
func WithEventPublisherImpl(pub portssvc.EventPublisherSvc) ShipmentServiceOption {
	return func(s *shipmentServiceImpl) {
		s.publisher = pub
	}
}

// NewShipmentServiceImpl creates a new shipment service with the provided options
func NewShipmentServiceImpl(repo portsrepo.ShipmentRepositoryFacade, options ...ShipmentServiceOption) portssvc.ShipmentSvcFacade {
	svc := &shipmentServiceImpl{
		shipmentRepo: repo,
		authorizer:   NewShipmentAuthorizer(),
		idGenerator:  trackingid.New(trackingid.DefaultPrefix),
		locks:        newKeyedMutex(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure shipmentServiceImpl implements the ShipmentSvcFacade interface
var _ portssvc.ShipmentSvcFacade = (*shipmentServiceImpl)(nil)

func (s *shipmentServiceImpl) RegisterShipment(ctx context.Context, req dto.RegisterShipmentRequest, actor string) (*domain.Shipment, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.LogWarn(ctx, "Shipment registration rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.authorizer.AuthorizeShipmentAction(ctx, actor, nil, domain.ActionRegister); err != nil {
		s.LogError(ctx, err, "Actor not authorized to register shipment", slog.String("actor", actor))
		return nil, err
	}

	now := time.Now()
	shipment := domain.Shipment{
		Sender:            actor,
		Receiver:          req.Receiver,
		ReceiverWallet:    req.ReceiverWallet,
		Description:       req.Description,
		SenderAddress:     req.SenderAddress,
		ReceiverAddress:   req.ReceiverAddress,
		Weight:            req.Weight,
		Dimensions:        req.Dimensions,
		Status:            domain.StatusRegistered,
		IsActive:          true,
		CreatedAt:         now,
		EstimatedDelivery: req.EstimatedDelivery,
	}
	initial := domain.StatusUpdate{
		Status:    domain.StatusRegistered,
		Location:  req.SenderAddress,
		Notes:     registeredNotes,
		Timestamp: now,
	}

	if req.TrackingID != nil {
		// Caller pre-generated the ID; a duplicate is the caller's problem.
		shipment.TrackingID = *req.TrackingID
		initial.TrackingID = shipment.TrackingID
		if err := s.shipmentRepo.SaveShipment(ctx, shipment, initial); err != nil {
			s.LogError(ctx, err, "Failed to save shipment",
				slog.String("tracking_id", shipment.TrackingID))
			return nil, err
		}
	} else {
		if err := s.saveWithGeneratedID(ctx, &shipment, &initial); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, domain.ShipmentEvent{
		EventID:     uuid.NewString(),
		Kind:        domain.EventShipmentRegistered,
		TrackingID:  shipment.TrackingID,
		Sender:      shipment.Sender,
		Receiver:    shipment.Receiver,
		Description: shipment.Description,
		Status:      shipment.Status,
		Timestamp:   now,
	})

	s.LogInfo(ctx, "Shipment registered",
		slog.String("tracking_id", shipment.TrackingID),
		slog.String("sender", shipment.Sender),
		slog.String("receiver", shipment.Receiver))
	return &shipment, nil
}

// saveWithGeneratedID generates tracking IDs until the store accepts one. The
// store's compare-and-insert create makes the loop safe without a global lock.
func (s *shipmentServiceImpl) saveWithGeneratedID(ctx context.Context, shipment *domain.Shipment, initial *domain.StatusUpdate) error {
	for attempt := 1; attempt <= maxTrackingIDAttempts; attempt++ {
		id, err := s.idGenerator.Generate()
		if err != nil {
			s.LogError(ctx, err, "Failed to generate tracking ID")
			return fmt.Errorf("failed to generate tracking ID: %w", err)
		}
		shipment.TrackingID = id
		initial.TrackingID = id

		err = s.shipmentRepo.SaveShipment(ctx, *shipment, *initial)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Tracking ID collision, regenerating",
				slog.String("tracking_id", id),
				slog.Int("attempt", attempt))
			continue
		}
		s.LogError(ctx, err, "Failed to save shipment", slog.String("tracking_id", id))
		return err
	}
	return fmt.Errorf("exhausted %d tracking ID generation attempts: %w", maxTrackingIDAttempts, apperrors.ErrDuplicate)
}

func (s *shipmentServiceImpl) UpdateShipmentStatus(ctx context.Context, trackingID string, req dto.UpdateStatusRequest, actor string) error {
	unlock := s.locks.Lock(trackingID)
	defer unlock()

	shipment, err := s.shipmentRepo.FindShipmentByTrackingID(ctx, trackingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shipment for status update",
				slog.String("tracking_id", trackingID))
		}
		return err
	}

	if err := s.authorizer.AuthorizeShipmentAction(ctx, actor, shipment, domain.ActionUpdateStatus); err != nil {
		s.LogWarn(ctx, "Status update denied",
			slog.String("tracking_id", trackingID),
			slog.String("actor", actor))
		return err
	}

	if !shipment.IsActive || !shipment.Status.CanTransitionTo(req.Status) {
		err := fmt.Errorf("%w: %s -> %s on shipment %s", apperrors.ErrInvalidTransition, shipment.Status, req.Status, trackingID)
		s.LogWarn(ctx, "Invalid status transition",
			slog.String("tracking_id", trackingID),
			slog.String("from", shipment.Status.String()),
			slog.String("to", req.Status.String()))
		return err
	}

	now := time.Now()
	update := domain.StatusUpdate{
		TrackingID: trackingID,
		Status:     req.Status,
		Location:   req.Location,
		Notes:      req.Notes,
		Timestamp:  now,
	}
	isActive := !req.Status.IsTerminal()
	if err := s.shipmentRepo.UpdateShipmentStatus(ctx, trackingID, req.Status, isActive, update); err != nil {
		s.LogError(ctx, err, "Failed to update shipment status",
			slog.String("tracking_id", trackingID))
		return err
	}

	s.publish(ctx, domain.ShipmentEvent{
		EventID:    uuid.NewString(),
		Kind:       domain.EventShipmentStatusUpdated,
		TrackingID: trackingID,
		Status:     req.Status,
		Location:   req.Location,
		Notes:      req.Notes,
		Timestamp:  now,
	})

	s.LogInfo(ctx, "Shipment status updated",
		slog.String("tracking_id", trackingID),
		slog.String("status", req.Status.String()))
	return nil
}

func (s *shipmentServiceImpl) ConfirmDelivery(ctx context.Context, trackingID string, actor string) error {
	unlock := s.locks.Lock(trackingID)
	defer unlock()

	shipment, err := s.shipmentRepo.FindShipmentByTrackingID(ctx, trackingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shipment for delivery confirmation",
				slog.String("tracking_id", trackingID))
		}
		return err
	}

	if err := s.authorizer.AuthorizeShipmentAction(ctx, actor, shipment, domain.ActionConfirmDelivery); err != nil {
		s.LogWarn(ctx, "Delivery confirmation denied",
			slog.String("tracking_id", trackingID),
			slog.String("actor", actor))
		return err
	}

	if shipment.Status == domain.StatusDelivered {
		return fmt.Errorf("%w: shipment %s", apperrors.ErrAlreadyDelivered, trackingID)
	}
	if !shipment.IsActive {
		return fmt.Errorf("%w: shipment %s is in terminal state %s", apperrors.ErrInvalidTransition, trackingID, shipment.Status)
	}

	// The confirmation entry carries the last known location from the ledger.
	history, err := s.shipmentRepo.FindStatusUpdates(ctx, trackingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read status history",
			slog.String("tracking_id", trackingID))
		return err
	}
	location := ""
	if len(history) > 0 {
		location = history[len(history)-1].Location
	}

	now := time.Now()
	update := domain.StatusUpdate{
		TrackingID: trackingID,
		Status:     domain.StatusDelivered,
		Location:   location,
		Notes:      deliveryConfirmedNotes,
		Timestamp:  now,
	}
	if err := s.shipmentRepo.UpdateShipmentStatus(ctx, trackingID, domain.StatusDelivered, false, update); err != nil {
		s.LogError(ctx, err, "Failed to confirm delivery",
			slog.String("tracking_id", trackingID))
		return err
	}

	s.publish(ctx, domain.ShipmentEvent{
		EventID:    uuid.NewString(),
		Kind:       domain.EventShipmentDelivered,
		TrackingID: trackingID,
		Receiver:   shipment.Receiver,
		Status:     domain.StatusDelivered,
		Location:   location,
		Timestamp:  now,
	})

	s.LogInfo(ctx, "Delivery confirmed",
		slog.String("tracking_id", trackingID),
		slog.String("receiver", shipment.Receiver))
	return nil
}

func (s *shipmentServiceImpl) GetShipment(ctx context.Context, trackingID string) (*domain.Shipment, []domain.StatusUpdate, error) {
	shipment, err := s.shipmentRepo.FindShipmentByTrackingID(ctx, trackingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shipment",
				slog.String("tracking_id", trackingID))
		}
		return nil, nil, err
	}

	history, err := s.shipmentRepo.FindStatusUpdates(ctx, trackingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read status history",
			slog.String("tracking_id", trackingID))
		return nil, nil, err
	}

	s.LogDebug(ctx, "Shipment retrieved",
		slog.String("tracking_id", trackingID),
		slog.Int("history_len", len(history)))
	return shipment, history, nil
}

func (s *shipmentServiceImpl) ListShipmentsBySender(ctx context.Context, sender string) ([]string, error) {
	ids, err := s.shipmentRepo.ListTrackingIDsBySender(ctx, sender)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shipments by sender", slog.String("sender", sender))
		return nil, err
	}
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

func (s *shipmentServiceImpl) ListShipmentsByReceiver(ctx context.Context, receiver string) ([]string, error) {
	ids, err := s.shipmentRepo.ListTrackingIDsByReceiver(ctx, receiver)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shipments by receiver", slog.String("receiver", receiver))
		return nil, err
	}
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

func (s *shipmentServiceImpl) TotalShipments(ctx context.Context) (int64, error) {
	total, err := s.shipmentRepo.CountShipments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count shipments")
		return 0, err
	}
	return total, nil
}

// publish emits an event without affecting the outcome of the mutation that
// produced it. Failures are logged and dropped.
func (s *shipmentServiceImpl) publish(ctx context.Context, event domain.ShipmentEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishShipmentEvent(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish shipment event",
			slog.String("event_kind", string(event.Kind)),
			slog.String("tracking_id", event.TrackingID),
			slog.String("error", err.Error()))
	}
}

func validateRegisterRequest(req dto.RegisterShipmentRequest) error {
	if req.Receiver == "" || req.Description == "" || req.SenderAddress == "" || req.ReceiverAddress == "" || req.Dimensions == "" {
		return fmt.Errorf("%w: receiver, description, addresses and dimensions are required", apperrors.ErrValidation)
	}
	if !req.Weight.IsPositive() {
		return fmt.Errorf("%w: weight must be greater than zero", apperrors.ErrValidation)
	}
	if req.TrackingID != nil && *req.TrackingID == "" {
		return fmt.Errorf("%w: trackingID must not be empty when provided", apperrors.ErrValidation)
	}
	return nil
}
