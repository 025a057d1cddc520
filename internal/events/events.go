// Package events publishes match lifecycle events on a Redis Pub/Sub channel
// for consumers outside the request path.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	MatchCreated  = "match_created"
	MatchFinished = "match_finished"
)

// Event represents a message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MatchCreatedPayload is the payload for the "match_created" event.
type MatchCreatedPayload struct {
	MatchID string `json:"match_id"`
	Size    int    `json:"size"`
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

// MatchFinishedPayload is the payload for the "match_finished" event. The
// ids are empty for a draw.
type MatchFinishedPayload struct {
	MatchID  string `json:"match_id"`
	Winner   string `json:"winner"`
	WinnerID string `json:"winner_id,omitempty"`
	LoserID  string `json:"loser_id,omitempty"`
}

// Publisher sends events to whoever listens.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Discard drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, string, any) error { return nil }

type redisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher publishes on EventsChannel.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	msg, err := json.Marshal(Event{Type: eventType, Payload: raw})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	if err := p.rdb.Publish(ctx, EventsChannel, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// Decode parses a message received on EventsChannel.
func Decode(msg string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(msg), &ev); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	return ev, nil
}
