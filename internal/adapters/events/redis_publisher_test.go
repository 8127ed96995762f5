package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_PublishShipmentEvent(t *testing.T) {
	// Setup miniredis
	mr := miniredis.RunT(t)
	defer mr.Close()

	pub, err := NewRedisPublisher("redis://"+mr.Addr(), "test-stream")
	require.NoError(t, err)
	defer pub.Close()

	ctx := context.Background()

	event := domain.ShipmentEvent{
		EventID:    "evt-1",
		Kind:       domain.EventShipmentRegistered,
		TrackingID: "DPC-1234-5678-90",
		Sender:     "alice",
		Receiver:   "bob",
		Status:     domain.StatusRegistered,
		Timestamp:  time.Now().UTC(),
	}

	err = pub.PublishShipmentEvent(ctx, event)
	require.NoError(t, err)

	// Read the stream back and verify the entry fields.
	opts, err := redis.ParseURL("redis://" + mr.Addr())
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	entries, err := client.XRange(ctx, "test-stream", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, string(domain.EventShipmentRegistered), entries[0].Values["kind"])
	assert.Equal(t, "DPC-1234-5678-90", entries[0].Values["tracking_id"])

	var decoded domain.ShipmentEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["payload"].(string)), &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.Sender, decoded.Sender)
	assert.Equal(t, event.Status, decoded.Status)
}

func TestRedisPublisher_OrderPreserved(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	pub, err := NewRedisPublisher("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer pub.Close()

	ctx := context.Background()

	kinds := []domain.EventKind{
		domain.EventShipmentRegistered,
		domain.EventShipmentStatusUpdated,
		domain.EventShipmentDelivered,
	}
	for i, kind := range kinds {
		err := pub.PublishShipmentEvent(ctx, domain.ShipmentEvent{
			EventID:    string(rune('a' + i)),
			Kind:       kind,
			TrackingID: "DPC-1234-5678-90",
		})
		require.NoError(t, err)
	}

	opts, err := redis.ParseURL("redis://" + mr.Addr())
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	// An empty stream name falls back to the default.
	entries, err := client.XRange(ctx, DefaultStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, kind := range kinds {
		assert.Equal(t, string(kind), entries[i].Values["kind"])
	}
}

func TestRedisPublisher_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	pub, err := NewRedisPublisher("redis://"+mr.Addr(), "test-stream")
	require.NoError(t, err)
	defer pub.Close()

	assert.NoError(t, pub.Ping(context.Background()))
}

func TestRedisPublisher_InvalidURL(t *testing.T) {
	_, err := NewRedisPublisher("invalid://url", "test-stream")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	pub, err := NewRedisPublisher("redis://"+addr, "test-stream")
	require.NoError(t, err)
	defer pub.Close()

	err = pub.PublishShipmentEvent(context.Background(), domain.ShipmentEvent{
		Kind:       domain.EventShipmentRegistered,
		TrackingID: "DPC-1234-5678-90",
	})
	assert.Error(t, err)
}
