package usecase

import (
	"context"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type FindTenantsUseCase struct {
	storage port.TenantStoragePort
}

func NewFindTenantsUseCase(storage port.TenantStoragePort) *FindTenantsUseCase {
	return &FindTenantsUseCase{storage: storage}
}

func (uc *FindTenantsUseCase) Execute(ctx context.Context, filters domain.FindTenantsFilters, limit, offset int) ([]domain.Tenant, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindTenants",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	tenants, total, err := uc.storage.FindWithFilters(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})

	return tenants, total, nil
}
