package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/contracts"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
	"property-management-service/internal/core/port/usecases_port"
)

// ConsumerConfig - конфигурация слушателя платёжных событий.
type ConsumerConfig struct {
	URL           string
	QueueName     string
	ExchangeName  string
	RoutingKey    string
	ConsumerTag   string
	PrefetchCount int
}

// paymentEventDTO - формат входящего события из очереди.
// Контракт зафиксирован схемой schemas/payment_event.schema.json.
type paymentEventDTO struct {
	PaymentID   string   `json:"payment_id"`
	TenantID    string   `json:"tenant_id"`
	PropertyID  string   `json:"property_id"`
	Amount      float64  `json:"amount"`
	PaymentDate string   `json:"payment_date"`
	DueDate     *string  `json:"due_date"`
	Status      string   `json:"status"`
	Method      string   `json:"method"`
	Type        string   `json:"type"`
	LateFee     *float64 `json:"late_fee"`
}

// PaymentEventsConsumerAdapter слушает очередь платёжных событий,
// валидирует каждое сообщение по схеме и сохраняет платёж через
// use case. Результат обработки каждого сообщения публикуется как
// отчёт об импорте. Реализует port.EventListenerPort.
type PaymentEventsConsumerAdapter struct {
	config     ConsumerConfig
	connection *amqp.Connection
	channel    *amqp.Channel

	savePaymentUC usecases_port.SavePaymentUseCase
	reporter      port.ImportReporterPort
	logger        port.LoggerPort
}

func NewPaymentEventsConsumerAdapter(cfg ConsumerConfig,
	savePaymentUC usecases_port.SavePaymentUseCase,
	reporter port.ImportReporterPort,
	baseLogger port.LoggerPort) (*PaymentEventsConsumerAdapter, error) {

	if cfg.URL == "" || cfg.QueueName == "" {
		return nil, fmt.Errorf("consumer: RabbitMQ URL and queue name are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("consumer: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("consumer: failed to open a channel: %w", err)
	}

	if cfg.PrefetchCount > 0 {
		if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("consumer: failed to set QoS: %w", err)
		}
	}

	if _, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("consumer: failed to declare queue '%s': %w", cfg.QueueName, err)
	}

	if cfg.ExchangeName != "" {
		if err := ch.QueueBind(cfg.QueueName, cfg.RoutingKey, cfg.ExchangeName, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("consumer: failed to bind queue '%s': %w", cfg.QueueName, err)
		}
	}

	return &PaymentEventsConsumerAdapter{
		config:        cfg,
		connection:    conn,
		channel:       ch,
		savePaymentUC: savePaymentUC,
		reporter:      reporter,
		logger:        baseLogger.WithFields(port.Fields{"component": "PaymentEventsConsumer"}),
	}, nil
}

// Start блокируется до отмены контекста или закрытия канала доставки.
func (a *PaymentEventsConsumerAdapter) Start(ctx context.Context) error {
	deliveries, err := a.channel.Consume(
		a.config.QueueName,
		a.config.ConsumerTag,
		false, // auto-ack выключен: подтверждаем только после сохранения
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to start consuming: %w", err)
	}

	a.logger.Info("Consumer started", port.Fields{"queue": a.config.QueueName})

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Consumer stopping due to context cancellation", nil)
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consumer: delivery channel closed unexpectedly")
			}
			a.handleDelivery(ctx, delivery)
		}
	}
}

func (a *PaymentEventsConsumerAdapter) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	traceID := uuid.New().String()
	msgLogger := a.logger.WithFields(port.Fields{"trace_id": traceID})
	msgCtx := contextkeys.ContextWithLogger(ctx, msgLogger)
	msgCtx = contextkeys.ContextWithTraceID(msgCtx, traceID)

	// Контракт сообщения проверяется до декодирования.
	if err := contracts.Validate("payment_event", delivery.Body); err != nil {
		msgLogger.Warn("Message rejected by contract validation", port.Fields{"error": err.Error()})
		a.report(msgCtx, "", "rejected", err)
		// Невалидное сообщение не станет валидным при повторе
		_ = delivery.Nack(false, false)
		return
	}

	var dto paymentEventDTO
	if err := json.Unmarshal(delivery.Body, &dto); err != nil {
		msgLogger.Warn("Failed to decode message body", port.Fields{"error": err.Error()})
		a.report(msgCtx, "", "rejected", err)
		_ = delivery.Nack(false, false)
		return
	}

	payment, err := dto.toDomain()
	if err != nil {
		msgLogger.Warn("Failed to map message to domain", port.Fields{"error": err.Error()})
		a.report(msgCtx, dto.PaymentID, "rejected", err)
		_ = delivery.Nack(false, false)
		return
	}

	if _, err := a.savePaymentUC.Execute(msgCtx, payment); err != nil {
		msgLogger.Error("Failed to save payment from event", err, port.Fields{"payment_id": dto.PaymentID})
		a.report(msgCtx, dto.PaymentID, "failed", err)
		// Ошибка хранилища может быть временной - возвращаем в очередь
		_ = delivery.Nack(false, true)
		return
	}

	a.report(msgCtx, dto.PaymentID, "saved", nil)
	_ = delivery.Ack(false)
}

func (a *PaymentEventsConsumerAdapter) report(ctx context.Context, paymentID, status string, cause error) {
	if a.reporter == nil {
		return
	}
	report := domain.PaymentImportReport{
		PaymentID: paymentID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
	if cause != nil {
		report.Error = cause.Error()
	}
	if err := a.reporter.PublishImportReport(ctx, report); err != nil {
		a.logger.Error("Failed to publish import report", err, nil)
	}
}

func (dto paymentEventDTO) toDomain() (domain.Payment, error) {
	paymentID, err := uuid.Parse(dto.PaymentID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid payment_id: %w", err)
	}
	tenantID, err := uuid.Parse(dto.TenantID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid tenant_id: %w", err)
	}
	propertyID, err := uuid.Parse(dto.PropertyID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid property_id: %w", err)
	}
	paymentDate, err := time.Parse(time.RFC3339, dto.PaymentDate)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid payment_date: %w", err)
	}

	payment := domain.Payment{
		ID:          paymentID,
		TenantID:    tenantID,
		PropertyID:  propertyID,
		Amount:      dto.Amount,
		PaymentDate: paymentDate,
		Status:      dto.Status,
		Method:      dto.Method,
		Type:        dto.Type,
	}
	if dto.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *dto.DueDate)
		if err != nil {
			return domain.Payment{}, fmt.Errorf("invalid due_date: %w", err)
		}
		payment.DueDate = &dueDate
	}
	if dto.LateFee != nil {
		payment.LateFee = *dto.LateFee
	}
	return payment, nil
}

// Close закрывает канал и соединение слушателя.
func (a *PaymentEventsConsumerAdapter) Close() error {
	var firstErr error
	if a.channel != nil {
		if err := a.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if a.connection != nil && !a.connection.IsClosed() {
		if err := a.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
