package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisPublisher(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)
	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { rdb.Close() })

	// Given a subscriber on the events channel
	sub := rdb.Subscribe(ctx, EventsChannel)
	t.Cleanup(func() { sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	// When a match creation is published
	pub := NewRedisPublisher(rdb)
	require.NoError(t, pub.Publish(ctx, MatchCreated, MatchCreatedPayload{
		MatchID: "m-1", Size: 3, PlayerX: "dev-x", PlayerO: "dev-o",
	}))

	// Then the subscriber receives it intact
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	ev, err := Decode(msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, MatchCreated, ev.Type)

	var payload MatchCreatedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, MatchCreatedPayload{MatchID: "m-1", Size: 3, PlayerX: "dev-x", PlayerO: "dev-o"}, payload)
}

func TestDecode(t *testing.T) {
	ev, err := Decode(`{"event":"match_finished","payload":{"match_id":"m-1","winner":"Draw"}}`)
	require.NoError(t, err)
	assert.Equal(t, MatchFinished, ev.Type)

	_, err = Decode(`nope`)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Publish(context.Background(), MatchFinished, MatchFinishedPayload{}))
}
