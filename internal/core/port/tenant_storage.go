package port

import (
	"context"

	"property-management-service/internal/core/domain"
)

// TenantStoragePort - контракт хранилища арендаторов.
type TenantStoragePort interface {
	Save(ctx context.Context, tenant domain.Tenant) error
	FindWithFilters(ctx context.Context, filters domain.FindTenantsFilters, limit, offset int) ([]domain.Tenant, int, error)
}
