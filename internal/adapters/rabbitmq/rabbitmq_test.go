package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"sharespace/internal/constants"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type recordingProducer struct {
	keys     []string
	messages []amqp.Publishing
	err      error
}

func (p *recordingProducer) Publish(_ context.Context, routingKey string, msg amqp.Publishing) error {
	p.keys = append(p.keys, routingKey)
	p.messages = append(p.messages, msg)
	return p.err
}

type recordingHandler struct {
	events []domain.ListingChangedEvent
}

func (h *recordingHandler) Execute(_ context.Context, e domain.ListingChangedEvent) error {
	h.events = append(h.events, e)
	return nil
}

func sampleEvent(change domain.ListingChange) domain.ListingChangedEvent {
	return domain.ListingChangedEvent{
		EventID:    uuid.New(),
		Change:     change,
		ListingID:  uuid.New(),
		OwnerID:    uuid.New(),
		OccurredAt: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishListingChanged(t *testing.T) {
	producer := &recordingProducer{}
	adapter, err := NewListingEventsPublisherAdapter(producer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	event := sampleEvent(domain.ListingUpdated)
	if err := adapter.PublishListingChanged(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(producer.keys) != 1 || producer.keys[0] != constants.ListingUpdatedRoutingKey {
		t.Fatalf("unexpected routing keys %v", producer.keys)
	}
	msg := producer.messages[0]
	if msg.Headers[constants.HeaderTraceID] != "trace-1" || msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("unexpected message metadata %+v", msg)
	}

	var dto ListingChangedDTO
	if err := json.Unmarshal(msg.Body, &dto); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if dto.Change != "updated" || dto.ListingID != event.ListingID {
		t.Fatalf("unexpected body %+v", dto)
	}
}

func TestPublishListingChangedErrors(t *testing.T) {
	producer := &recordingProducer{err: errors.New("channel closed")}
	adapter, _ := NewListingEventsPublisherAdapter(producer)

	if err := adapter.PublishListingChanged(context.Background(), sampleEvent(domain.ListingCreated)); err == nil {
		t.Fatal("expected publish error")
	}
	if err := adapter.PublishListingChanged(context.Background(), sampleEvent("archived")); err == nil {
		t.Fatal("expected error for unknown change")
	}
	if len(producer.keys) != 1 {
		t.Fatalf("unknown change must not be published, got %v", producer.keys)
	}
}

func TestListingEventsMessageHandler(t *testing.T) {
	handler := &recordingHandler{}
	adapter := &ListingEventsConsumerAdapter{handleUC: handler, logger: contextkeys.LoggerFromContext(context.Background())}

	event := sampleEvent(domain.ListingDeleted)
	body, _ := json.Marshal(toListingChangedDTO(event))

	if err := adapter.messageHandler(context.Background(), amqp.Delivery{Body: body, RoutingKey: constants.ListingDeletedRoutingKey}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(handler.events) != 1 {
		t.Fatalf("expected one event, got %d", len(handler.events))
	}
	if got := handler.events[0]; got.EventID != event.EventID || got.Change != event.Change || !got.OccurredAt.Equal(event.OccurredAt) {
		t.Fatalf("unexpected events %+v", handler.events)
	}

	if err := adapter.messageHandler(context.Background(), amqp.Delivery{Body: []byte(`{"change":"created"}`)}); err == nil {
		t.Fatal("expected contract violation")
	}
	if len(handler.events) != 1 {
		t.Fatal("invalid message must not reach the use case")
	}
}
