package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type FindPaymentsUseCase interface {
	Execute(ctx context.Context, filters domain.FindPaymentsFilters, limit, offset int) ([]domain.Payment, int, error)
}
