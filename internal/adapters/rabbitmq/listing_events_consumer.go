package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	logger_adapter "sharespace/internal/adapters/logger"
	"sharespace/internal/constants"
	"sharespace/internal/contextkeys"
	"sharespace/internal/contracts"
	"sharespace/internal/core/port"
	"sharespace/internal/core/port/usecases_port"
	"sharespace/pkg/rabbitmq/rabbitmq_common"
	"sharespace/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventsConsumerAdapter слушает изменения объявлений от всех экземпляров сервиса.
type ListingEventsConsumerAdapter struct {
	consumer *rabbitmq_consumer.Consumer
	handleUC usecases_port.HandleListingChangedUseCasePort
	logger   port.LoggerPort
}

func NewListingEventsConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	handleUC usecases_port.HandleListingChangedUseCasePort,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*ListingEventsConsumerAdapter, error) {
	adapter := &ListingEventsConsumerAdapter{
		handleUC: handleUC,
		logger:   logger.WithFields(port.Fields{"component": "ListingEventsConsumerAdapter"}),
	}

	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = logger_adapter.NewKeyValueAdapter(pkgLogger)

	consumer, err := rabbitmq_consumer.NewConsumer(consumerCfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for listing events: %w", err)
	}
	adapter.consumer = consumer
	return adapter, nil
}

func (a *ListingEventsConsumerAdapter) messageHandler(ctx context.Context, d amqp.Delivery) error {
	traceID, ok := d.Headers[constants.HeaderTraceID].(string)
	if !ok || traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"routing_key":  d.RoutingKey,
		"delivery_tag": d.DeliveryTag,
	})
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	if err := contracts.ValidateListingChangedEvent(d.Body); err != nil {
		msgLogger.Error("Listing event rejected by contract, NACKing message", err, nil)
		return err
	}

	var dto ListingChangedDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		msgLogger.Error("Error unmarshalling listing event, NACKing message", err, nil)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return a.handleUC.Execute(ctx, dto.toDomain())
}

// StartConsuming блокируется до отмены контекста.
func (a *ListingEventsConsumerAdapter) StartConsuming(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

func (a *ListingEventsConsumerAdapter) Close() error {
	return a.consumer.Close()
}
