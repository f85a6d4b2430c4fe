package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// EventsExchange is the exchange domain events are published to; the event
// type is the routing key.
const EventsExchange = "affirmations"

// Routing keys for domain events.
const (
	EventAffirmationSaved   = "affirmation.saved"
	EventAffirmationDeleted = "affirmation.deleted"
	EventAccountCreated     = "account.created"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Event is the JSON payload published for every domain event.
type Event struct {
	Type       string    `json:"type"`
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent sends evt if a publisher is configured. Failures are logged
// and never returned to the caller.
func publishEvent(publisher EventPublisher, logger *zap.Logger, evt Event) {
	if publisher == nil {
		logger.Debug("Event publisher not configured, skipping event", zap.String("type", evt.Type))
		return
	}
	body, err := json.Marshal(evt)
	if err != nil {
		logger.Warn("Failed to marshal event", zap.String("type", evt.Type), zap.Error(err))
		return
	}
	if err := publisher.Publish(EventsExchange, evt.Type, body); err != nil {
		logger.Warn("Failed to publish event", zap.String("type", evt.Type), zap.Uint("id", evt.ID), zap.Error(err))
		return
	}
	logger.Debug("Published event", zap.String("type", evt.Type), zap.Uint("id", evt.ID))
}
