package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type FindTenantsUseCase interface {
	Execute(ctx context.Context, filters domain.FindTenantsFilters, limit, offset int) ([]domain.Tenant, int, error)
}
