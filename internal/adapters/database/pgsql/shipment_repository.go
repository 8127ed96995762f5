package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpackchain/package_tracking_app/internal/apperrors"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portsrepo "github.com/dpackchain/package_tracking_app/internal/core/ports/repositories"
	"github.com/dpackchain/package_tracking_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type PgxShipmentRepository struct {
	pool *pgxpool.Pool
}

// NewShipmentRepository creates a new repository for shipment data.
func NewShipmentRepository(pool *pgxpool.Pool) portsrepo.ShipmentRepositoryFacade {
	return &PgxShipmentRepository{pool: pool}
}

// Ensure PgxShipmentRepository implements portsrepo.ShipmentRepositoryFacade
var _ portsrepo.ShipmentRepositoryFacade = (*PgxShipmentRepository)(nil)

// Helper to convert domain.Shipment to models.Shipment for DB storage
func toModelShipment(d domain.Shipment) models.Shipment {
	return models.Shipment{
		TrackingID:        d.TrackingID,
		Sender:            d.Sender,
		Receiver:          d.Receiver,
		ReceiverWallet:    d.ReceiverWallet,
		Description:       d.Description,
		SenderAddress:     d.SenderAddress,
		ReceiverAddress:   d.ReceiverAddress,
		Weight:            d.Weight,
		Dimensions:        d.Dimensions,
		Status:            int(d.Status),
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		EstimatedDelivery: d.EstimatedDelivery,
	}
}

// Helper to convert models.Shipment from DB to domain.Shipment
func toDomainShipment(m models.Shipment) domain.Shipment {
	return domain.Shipment{
		TrackingID:        m.TrackingID,
		Sender:            m.Sender,
		Receiver:          m.Receiver,
		ReceiverWallet:    m.ReceiverWallet,
		Description:       m.Description,
		SenderAddress:     m.SenderAddress,
		ReceiverAddress:   m.ReceiverAddress,
		Weight:            m.Weight,
		Dimensions:        m.Dimensions,
		Status:            domain.ShipmentStatus(m.Status),
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		EstimatedDelivery: m.EstimatedDelivery,
	}
}

// SaveShipment inserts a new shipment and its initial status update in one
// transaction. The primary key on tracking_id makes the insert
// compare-and-insert: a concurrent claim of the same ID fails here with
// apperrors.ErrDuplicate.
func (r *PgxShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment, initial domain.StatusUpdate) error {
	modelShp := toModelShipment(shipment)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	insertShipment := `
		INSERT INTO shipments (tracking_id, sender, receiver, receiver_wallet, description, sender_address, receiver_address, weight, dimensions, status, is_active, created_at, estimated_delivery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	// Use sql.NullString for the optional receiver wallet
	var receiverWallet sql.NullString
	if modelShp.ReceiverWallet != "" {
		receiverWallet = sql.NullString{String: modelShp.ReceiverWallet, Valid: true}
	}

	_, err = tx.Exec(ctx, insertShipment,
		modelShp.TrackingID,
		modelShp.Sender,
		modelShp.Receiver,
		receiverWallet,
		modelShp.Description,
		modelShp.SenderAddress,
		modelShp.ReceiverAddress,
		modelShp.Weight,
		modelShp.Dimensions,
		modelShp.Status,
		modelShp.IsActive,
		modelShp.CreatedAt,
		modelShp.EstimatedDelivery,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: shipment with tracking ID %s already exists", apperrors.ErrDuplicate, modelShp.TrackingID)
		}
		return fmt.Errorf("failed to save shipment %s: %w", modelShp.TrackingID, err)
	}

	insertUpdate := `
		INSERT INTO status_updates (tracking_id, seq, status, location, notes, occurred_at)
		VALUES ($1, 0, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, insertUpdate,
		modelShp.TrackingID,
		int(initial.Status),
		initial.Location,
		initial.Notes,
		initial.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save initial status update for %s: %w", modelShp.TrackingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit shipment %s: %w", modelShp.TrackingID, err)
	}
	return nil
}

// FindShipmentByTrackingID retrieves a shipment by its tracking ID.
func (r *PgxShipmentRepository) FindShipmentByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	query := `
		SELECT tracking_id, sender, receiver, receiver_wallet, description, sender_address, receiver_address, weight, dimensions, status, is_active, created_at, estimated_delivery
		FROM shipments
		WHERE tracking_id = $1;
	`
	var modelShp models.Shipment
	var receiverWallet sql.NullString

	err := r.pool.QueryRow(ctx, query, trackingID).Scan(
		&modelShp.TrackingID,
		&modelShp.Sender,
		&modelShp.Receiver,
		&receiverWallet,
		&modelShp.Description,
		&modelShp.SenderAddress,
		&modelShp.ReceiverAddress,
		&modelShp.Weight,
		&modelShp.Dimensions,
		&modelShp.Status,
		&modelShp.IsActive,
		&modelShp.CreatedAt,
		&modelShp.EstimatedDelivery,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shipment by tracking ID %s: %w", trackingID, err)
	}

	if receiverWallet.Valid {
		modelShp.ReceiverWallet = receiverWallet.String
	}

	shipment := toDomainShipment(modelShp)
	return &shipment, nil
}

// ListTrackingIDsBySender returns tracking IDs for a sender in registration order.
func (r *PgxShipmentRepository) ListTrackingIDsBySender(ctx context.Context, sender string) ([]string, error) {
	return r.listTrackingIDs(ctx, "sender", sender)
}

// ListTrackingIDsByReceiver returns tracking IDs for a receiver in registration order.
func (r *PgxShipmentRepository) ListTrackingIDsByReceiver(ctx context.Context, receiver string) ([]string, error) {
	return r.listTrackingIDs(ctx, "receiver", receiver)
}

func (r *PgxShipmentRepository) listTrackingIDs(ctx context.Context, column, identity string) ([]string, error) {
	// registration_seq is a bigserial assigned at insert, so ordering by it
	// reproduces registration order.
	query := fmt.Sprintf(`
		SELECT tracking_id
		FROM shipments
		WHERE %s = $1
		ORDER BY registration_seq;
	`, column)

	rows, err := r.pool.Query(ctx, query, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments by %s: %w", column, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tracking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shipments by %s: %w", column, err)
	}
	return ids, nil
}

// CountShipments returns the total number of shipments ever created.
func (r *PgxShipmentRepository) CountShipments(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM shipments;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	return count, nil
}

// UpdateShipmentStatus sets the live status fields and appends the history
// entry in one transaction.
func (r *PgxShipmentRepository) UpdateShipmentStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, isActive bool, update domain.StatusUpdate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	tag, err := tx.Exec(ctx, `UPDATE shipments SET status = $1, is_active = $2 WHERE tracking_id = $3;`,
		int(status), isActive, trackingID)
	if err != nil {
		return fmt.Errorf("failed to update status for %s: %w", trackingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	appendUpdate := `
		INSERT INTO status_updates (tracking_id, seq, status, location, notes, occurred_at)
		SELECT $1, COALESCE(MAX(seq) + 1, 0), $2, $3, $4, $5
		FROM status_updates
		WHERE tracking_id = $1;
	`
	_, err = tx.Exec(ctx, appendUpdate,
		trackingID,
		int(update.Status),
		update.Location,
		update.Notes,
		update.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append status update for %s: %w", trackingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status update for %s: %w", trackingID, err)
	}
	return nil
}

// FindStatusUpdates returns the full history for a shipment in append order.
func (r *PgxShipmentRepository) FindStatusUpdates(ctx context.Context, trackingID string) ([]domain.StatusUpdate, error) {
	// Distinguish "no shipment" from "shipment with empty history"; the
	// latter cannot happen after a successful registration, but the caller
	// relies on NotFound for unknown IDs.
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE tracking_id = $1);`, trackingID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check shipment %s: %w", trackingID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	query := `
		SELECT tracking_id, seq, status, location, notes, occurred_at
		FROM status_updates
		WHERE tracking_id = $1
		ORDER BY seq;
	`
	rows, err := r.pool.Query(ctx, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status updates for %s: %w", trackingID, err)
	}
	defer rows.Close()

	var history []domain.StatusUpdate
	for rows.Next() {
		var m models.StatusUpdate
		if err := rows.Scan(&m.TrackingID, &m.Seq, &m.Status, &m.Location, &m.Notes, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan status update: %w", err)
		}
		history = append(history, domain.StatusUpdate{
			TrackingID: m.TrackingID,
			Seq:        m.Seq,
			Status:     domain.ShipmentStatus(m.Status),
			Location:   m.Location,
			Notes:      m.Notes,
			Timestamp:  m.Timestamp,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status updates for %s: %w", trackingID, err)
	}
	return history, nil
}
