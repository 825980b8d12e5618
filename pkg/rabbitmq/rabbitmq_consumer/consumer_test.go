package rabbitmq_consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"sharespace/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

func newTestConsumer(handler MessageHandler) *Consumer {
	return &Consumer{
		config:  ConsumerConfig{ConsumerTag: "test"},
		handler: handler,
		Logger:  rabbitmq_common.OrNoop(nil),
	}
}

func TestConsumeReportsClosedDeliveries(t *testing.T) {
	var handled []string
	c := newTestConsumer(func(_ context.Context, d amqp.Delivery) error {
		handled = append(handled, d.RoutingKey)
		return nil
	})

	msgs := make(chan amqp.Delivery, 1)
	msgs <- amqp.Delivery{RoutingKey: "listing.created"}
	close(msgs)

	err := c.consume(context.Background(), msgs, make(chan *amqp.Error))
	if !errors.Is(err, ErrDeliveriesClosed) {
		t.Fatalf("expected ErrDeliveriesClosed, got %v", err)
	}
	if len(handled) != 1 || handled[0] != "listing.created" {
		t.Fatalf("pending delivery must be handled first, got %v", handled)
	}
}

func TestConsumeReportsConnectionClose(t *testing.T) {
	c := newTestConsumer(func(context.Context, amqp.Delivery) error { return nil })

	notifyClose := make(chan *amqp.Error, 1)
	notifyClose <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"}

	err := c.consume(context.Background(), make(chan amqp.Delivery), notifyClose)
	var amqpErr *amqp.Error
	if !errors.As(err, &amqpErr) || amqpErr.Code != amqp.ConnectionForced {
		t.Fatalf("expected connection error, got %v", err)
	}

	closed := make(chan *amqp.Error)
	close(closed)
	if err := c.consume(context.Background(), make(chan amqp.Delivery), closed); err == nil {
		t.Fatal("closed notification channel must be reported as an error")
	}
}

func TestConsumeStopsOnCancel(t *testing.T) {
	c := newTestConsumer(func(context.Context, amqp.Delivery) error { return nil })
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.consume(ctx, make(chan amqp.Delivery), make(chan *amqp.Error)) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancellation must not be an error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
