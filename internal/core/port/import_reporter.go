package port

import (
	"context"

	"property-management-service/internal/core/domain"
)

// ImportReporterPort - публикация отчётов об импорте платёжных событий.
type ImportReporterPort interface {
	PublishImportReport(ctx context.Context, report domain.PaymentImportReport) error
}
