package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	portssvc "github.com/dpackchain/package_tracking_app/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream shipment events are appended to when no
// stream name is configured.
const DefaultStream = "shipment-events"

// RedisPublisher implements the EventPublisherSvc port on a Redis stream.
// XADD appends are ordered per stream, so per-shipment emission order equals
// call order; the stream entry ID doubles as the sequence reference an
// indexing layer can resume from.
type RedisPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisPublisher creates a publisher from a Redis URL in the form
// redis://[:password@]host[:port][/database].
func NewRedisPublisher(redisURL, stream string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisPublisher{client: redis.NewClient(opts), stream: stream}, nil
}

// Ensure RedisPublisher implements portssvc.EventPublisherSvc
var _ portssvc.EventPublisherSvc = (*RedisPublisher)(nil)

func (p *RedisPublisher) PublishShipmentEvent(ctx context.Context, event domain.ShipmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"kind":        string(event.Kind),
			"tracking_id": event.TrackingID,
			"payload":     payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append event to stream %s: %w", p.stream, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
