package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sharespace/internal/constants"
	"sharespace/internal/contextkeys"
	"sharespace/internal/contracts"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// messagePublisher - то, что нужно адаптеру от rabbitmq_producer.Publisher.
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

type ListingEventsPublisherAdapter struct {
	producer messagePublisher
}

func NewListingEventsPublisherAdapter(producer messagePublisher) (*ListingEventsPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &ListingEventsPublisherAdapter{producer: producer}, nil
}

func (a *ListingEventsPublisherAdapter) PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error {
	routingKey := routingKeyFor(event.Change)
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ListingEventsPublisherAdapter",
		"routing_key": routingKey,
		"event_id":    event.EventID,
	})
	if routingKey == "" {
		return fmt.Errorf("rabbitmq adapter: unknown listing change %q", event.Change)
	}

	body, err := json.Marshal(toListingChangedDTO(event))
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}
	if err := contracts.ValidateListingChangedEvent(body); err != nil {
		adapterLogger.Error("Event does not match its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		MessageId:    event.EventID.String(),
		Headers: amqp.Table{
			constants.HeaderEventType:    contracts.ListingChangedEvent,
			constants.HeaderEventVersion: contracts.VersionV1,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event %s: %w", event.EventID, err)
	}

	adapterLogger.Debug("Listing event published", nil)
	return nil
}

// NoopListingEventsPublisher используется при RABBITMQ_ENABLED=false.
type NoopListingEventsPublisher struct{}

func (NoopListingEventsPublisher) PublishListingChanged(context.Context, domain.ListingChangedEvent) error {
	return nil
}
