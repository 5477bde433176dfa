package rabbitmq_adapter

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"property-management-service/internal/core/port"
)

// PublisherConfig - конфигурация производителя.
type PublisherConfig struct {
	URL             string
	ExchangeName    string
	ExchangeType    string // direct, fanout, topic
	DurableExchange bool
}

// Publisher владеет собственным соединением и каналом. Никаких
// глобальных реестров: объект создается в composition root и явно
// закрывается при остановке приложения.
type Publisher struct {
	config     PublisherConfig
	connection *amqp.Connection
	channel    *amqp.Channel
	logger     port.LoggerPort
}

// NewPublisher создает нового производителя и объявляет обменник.
func NewPublisher(cfg PublisherConfig, logger port.LoggerPort) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("publisher: RabbitMQ URL is required")
	}
	if cfg.ExchangeName == "" || cfg.ExchangeType == "" {
		return nil, fmt.Errorf("publisher: exchange name and type are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("publisher: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		cfg.ExchangeType,
		cfg.DurableExchange,
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to declare exchange '%s': %w", cfg.ExchangeName, err)
	}

	logger.Debug("Publisher connected, exchange declared", port.Fields{
		"exchange": cfg.ExchangeName,
		"type":     cfg.ExchangeType,
	})

	return &Publisher{
		config:     cfg,
		connection: conn,
		channel:    ch,
		logger:     logger,
	}, nil
}

// Publish публикует сообщение с персистентной доставкой.
func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("publisher: not connected or channel/connection is closed")
	}

	err := p.channel.PublishWithContext(ctx,
		p.config.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publisher: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.connection != nil && !p.connection.IsClosed() {
		if err := p.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
