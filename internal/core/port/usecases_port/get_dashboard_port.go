package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

// GetDashboardUseCase - batch-агрегация данных для дашборда.
// Execute не возвращает ошибку: частичные сбои отражаются в результате.
type GetDashboardUseCase interface {
	Execute(ctx context.Context, query domain.DashboardQuery) *domain.DashboardResult
}
