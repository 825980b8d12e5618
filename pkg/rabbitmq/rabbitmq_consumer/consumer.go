package rabbitmq_consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"sharespace/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageHandler - обработчик одного сообщения.
// Пакет сам решает, делать ack или nack: nil -> Ack, ошибка -> Nack без requeue.
type MessageHandler func(ctx context.Context, delivery amqp.Delivery) error

// ConsumerConfig конфигурация для потребителя
type ConsumerConfig struct {
	rabbitmq_common.Config
	// Настройки очереди. Пустое имя - сервер сгенерирует его сам.
	QueueName       string
	DurableQueue    bool
	ExclusiveQueue  bool
	AutoDeleteQueue bool
	QueueArgs       amqp.Table
	// Обменник для привязки. Объявляется, если DeclareExchangeForBind = true.
	ExchangeNameForBind    string
	DeclareExchangeForBind bool
	ExchangeTypeForBind    string
	DurableExchangeForBind bool
	RoutingKeyForBind      string
	// QoS: 0 или меньше - без ограничений
	PrefetchCount int
	ConsumerTag   string

	Logger rabbitmq_common.Logger
}

// Consumer последовательно обрабатывает сообщения из одной очереди
type Consumer struct {
	config          ConsumerConfig
	connection      *amqp.Connection
	channel         *amqp.Channel
	actualQueueName string
	handler         MessageHandler
	wg              sync.WaitGroup

	Logger rabbitmq_common.Logger
}

// NewConsumer создает потребителя, объявляет очередь и привязывает ее к обменнику
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, connManager *rabbitmq_common.ConnectionManager) (*Consumer, error) {
	logger := rabbitmq_common.OrNoop(cfg.Logger)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("consumer: invalid base config: %w", err)
	}
	if handler == nil {
		return nil, fmt.Errorf("consumer: message handler is required")
	}
	if cfg.DeclareExchangeForBind && (cfg.ExchangeNameForBind == "" || cfg.ExchangeTypeForBind == "") {
		return nil, fmt.Errorf("consumer: exchange name and type are required if declaring an exchange for binding")
	}

	conn, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("consumer: failed to get channel from manager: %w", err)
	}

	c := &Consumer{
		config:     cfg,
		connection: conn,
		channel:    ch,
		handler:    handler,
		Logger:     logger,
	}

	if err := c.setup(); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("consumer: setup failed: %w", err)
	}
	return c, nil
}

func (c *Consumer) setup() error {
	if c.config.PrefetchCount > 0 {
		c.Logger.Debug("Setting QoS", "prefetch_count", c.config.PrefetchCount)
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	q, err := c.channel.QueueDeclare(
		c.config.QueueName,
		c.config.DurableQueue,
		c.config.AutoDeleteQueue,
		c.config.ExclusiveQueue,
		false, // no-wait
		c.config.QueueArgs,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", c.config.QueueName, err)
	}
	c.actualQueueName = q.Name

	if c.config.DeclareExchangeForBind {
		c.Logger.Debug("Declaring exchange",
			"name", c.config.ExchangeNameForBind,
			"type", c.config.ExchangeTypeForBind,
		)
		err := c.channel.ExchangeDeclare(
			c.config.ExchangeNameForBind,
			c.config.ExchangeTypeForBind,
			c.config.DurableExchangeForBind,
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange '%s' for binding: %w", c.config.ExchangeNameForBind, err)
		}
	}

	if c.config.ExchangeNameForBind != "" {
		c.Logger.Debug("Binding queue to exchange",
			"queue_name", c.actualQueueName,
			"exchange_name", c.config.ExchangeNameForBind,
			"routing_key", c.config.RoutingKeyForBind,
		)
		err := c.channel.QueueBind(c.actualQueueName, c.config.RoutingKeyForBind, c.config.ExchangeNameForBind, false, nil)
		if err != nil {
			return fmt.Errorf("failed to bind queue '%s' to exchange '%s': %w", c.actualQueueName, c.config.ExchangeNameForBind, err)
		}
	}

	c.Logger.Debug("Setup complete", "queue", c.actualQueueName)
	return nil
}

// StartConsuming блокируется до отмены контекста или закрытия соединения.
func (c *Consumer) StartConsuming(ctx context.Context) error {
	if c.channel == nil || c.connection == nil || c.connection.IsClosed() {
		return fmt.Errorf("consumer: not connected")
	}

	msgs, err := c.channel.Consume(
		c.actualQueueName,
		c.config.ConsumerTag,
		false, // auto-ack
		false, // exclusive consumer
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consumer %s: failed to register on queue '%s': %w", c.config.ConsumerTag, c.actualQueueName, err)
	}

	c.Logger.Info("[*] Waiting for messages on queue", "queue_name", c.actualQueueName)

	notifyClose := c.connection.NotifyClose(make(chan *amqp.Error, 1))
	return c.consume(ctx, msgs, notifyClose)
}

// ErrDeliveriesClosed - брокер закрыл канал доставки (удалена очередь, отменен потребитель).
var ErrDeliveriesClosed = errors.New("deliveries channel closed by broker")

// consume возвращает nil только при отмене контекста; любой другой выход - ошибка.
func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp.Delivery, notifyClose <-chan *amqp.Error) error {
	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Context cancelled. Shutting down consumer.", "consumer_tag", c.config.ConsumerTag)
			return nil

		case amqpErr := <-notifyClose:
			c.Logger.Error(amqpErr, "Connection closed for consumer.", "consumer_tag", c.config.ConsumerTag)
			if amqpErr == nil {
				return fmt.Errorf("consumer %s: connection closed", c.config.ConsumerTag)
			}
			return amqpErr

		case d, ok := <-msgs:
			if !ok {
				c.Logger.Warn("Deliveries channel closed by RabbitMQ.", "consumer_tag", c.config.ConsumerTag)
				return fmt.Errorf("consumer %s: %w", c.config.ConsumerTag, ErrDeliveriesClosed)
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	c.wg.Add(1)
	defer c.wg.Done()

	if err := c.handler(ctx, d); err != nil {
		c.Logger.Error(err, "Handler error for message. Nacking without requeue.",
			"consumer_tag", c.config.ConsumerTag,
			"delivery_tag", d.DeliveryTag)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Close ждет завершения обработчика и закрывает канал
func (c *Consumer) Close() error {
	c.wg.Wait()

	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.Logger.Error(err, "Error closing channel")
			firstErr = err
		}
		c.channel = nil
	}
	c.Logger.Info("Consumer closed")
	return firstErr
}
