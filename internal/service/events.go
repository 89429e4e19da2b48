package service

import (
	"context"
	"encoding/json"

	"github.com/davsilvam/academic-api/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Event describes a record change, published to the owning user's channel and
// streamed out over the events WebSocket.
type Event struct {
	Resource  string     `json:"resource"`
	Action    string     `json:"action"`
	ID        uuid.UUID  `json:"id"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
}

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventPublisher fans record-change events out through Redis PubSub.
// Publishing is best-effort: failures are logged and never fail the request.
// A nil publisher is valid and publishes nothing.
type EventPublisher struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(rdb *redis.Client, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		rdb: rdb,
		log: log.With().Str("component", "event_publisher").Logger(),
	}
}

// Publish sends an event to the user's channel.
func (p *EventPublisher) Publish(ctx context.Context, userID uuid.UUID, ev Event) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Msg("Marshal event failed")
		return
	}

	channel := config.CacheKey.UserEventsChannel(userID)
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		p.log.Warn().
			Err(err).
			Str("channel", channel).
			Str("resource", ev.Resource).
			Msg("Publish event failed")
	}
}
