package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portsrepo "github.com/dpackchain/package_tracking_app/internal/core/ports/repositories"
)

// ShipmentRepository is a mutex-guarded in-memory implementation of the
// shipment repository port, used for tests and database-less runs. Create is
// compare-and-insert under the write lock, which is what makes the service's
// tracking-ID regeneration loop safe.
type ShipmentRepository struct {
	mu           sync.RWMutex
	shipments    map[string]domain.Shipment
	history      map[string][]domain.StatusUpdate
	bySender     map[string][]string
	byReceiver   map[string][]string
	totalCreated int64
}

// NewShipmentRepository creates an empty in-memory shipment repository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		shipments:  make(map[string]domain.Shipment),
		history:    make(map[string][]domain.StatusUpdate),
		bySender:   make(map[string][]string),
		byReceiver: make(map[string][]string),
	}
}

// Ensure ShipmentRepository implements portsrepo.ShipmentRepositoryFacade
var _ portsrepo.ShipmentRepositoryFacade = (*ShipmentRepository)(nil)

func (r *ShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment, initial domain.StatusUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shipments[shipment.TrackingID]; exists {
		return fmt.Errorf("%w: shipment with tracking ID %s already exists", apperrors.ErrDuplicate, shipment.TrackingID)
	}

	initial.TrackingID = shipment.TrackingID
	initial.Seq = 0

	r.shipments[shipment.TrackingID] = shipment
	r.history[shipment.TrackingID] = []domain.StatusUpdate{initial}
	r.bySender[shipment.Sender] = append(r.bySender[shipment.Sender], shipment.TrackingID)
	r.byReceiver[shipment.Receiver] = append(r.byReceiver[shipment.Receiver], shipment.TrackingID)
	r.totalCreated++
	return nil
}

func (r *ShipmentRepository) FindShipmentByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	shipment, exists := r.shipments[trackingID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return &shipment, nil
}

func (r *ShipmentRepository) ListTrackingIDsBySender(ctx context.Context, sender string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.bySender[sender]...), nil
}

func (r *ShipmentRepository) ListTrackingIDsByReceiver(ctx context.Context, receiver string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.byReceiver[receiver]...), nil
}

func (r *ShipmentRepository) CountShipments(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.totalCreated, nil
}

func (r *ShipmentRepository) UpdateShipmentStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, isActive bool, update domain.StatusUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	shipment, exists := r.shipments[trackingID]
	if !exists {
		return apperrors.ErrNotFound
	}

	shipment.Status = status
	shipment.IsActive = isActive
	r.shipments[trackingID] = shipment

	update.TrackingID = trackingID
	update.Seq = len(r.history[trackingID])
	r.history[trackingID] = append(r.history[trackingID], update)
	return nil
}

func (r *ShipmentRepository) FindStatusUpdates(ctx context.Context, trackingID string) ([]domain.StatusUpdate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, exists := r.shipments[trackingID]; !exists {
		return nil, apperrors.ErrNotFound
	}
	return append([]domain.StatusUpdate(nil), r.history[trackingID]...), nil
}
