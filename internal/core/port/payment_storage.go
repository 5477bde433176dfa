package port

import (
	"context"

	"property-management-service/internal/core/domain"
)

// PaymentStoragePort - контракт хранилища платежей.
type PaymentStoragePort interface {
	Save(ctx context.Context, payment domain.Payment) error
	FindWithFilters(ctx context.Context, filters domain.FindPaymentsFilters, limit, offset int) ([]domain.Payment, int, error)
}
