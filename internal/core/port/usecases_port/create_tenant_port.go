package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type CreateTenantUseCase interface {
	Execute(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error)
}
