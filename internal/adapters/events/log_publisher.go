package events

import (
	"context"
	"log/slog"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
)

// LogPublisher writes events to the structured log instead of a broker. It is
// the fallback when no Redis URL is configured, so local runs still show the
// full event feed.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that logs events via logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Ensure LogPublisher implements portssvc.EventPublisherSvc
var _ portssvc.EventPublisherSvc = (*LogPublisher)(nil)

func (p *LogPublisher) PublishShipmentEvent(ctx context.Context, event domain.ShipmentEvent) error {
	p.logger.InfoContext(ctx, "Shipment event",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.String("tracking_id", event.TrackingID),
		slog.String("status", event.Status.String()),
		slog.Time("timestamp", event.Timestamp),
	)
	return nil
}
