package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"property-management-service/internal/core/domain"
)

// ImportReporterAdapter публикует отчёты об импорте платёжных событий.
// Реализует port.ImportReporterPort.
type ImportReporterAdapter struct {
	publisher  *Publisher
	routingKey string
}

func NewImportReporterAdapter(publisher *Publisher, routingKey string) (*ImportReporterAdapter, error) {
	if publisher == nil {
		return nil, fmt.Errorf("publisher cannot be nil")
	}
	return &ImportReporterAdapter{
		publisher:  publisher,
		routingKey: routingKey,
	}, nil
}

func (a *ImportReporterAdapter) PublishImportReport(ctx context.Context, report domain.PaymentImportReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal import report: %w", err)
	}

	if err := a.publisher.Publish(ctx, a.routingKey, body); err != nil {
		return fmt.Errorf("failed to publish import report: %w", err)
	}
	return nil
}
