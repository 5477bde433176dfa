package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type CreateTenantUseCase struct {
	tenants    port.TenantStoragePort
	properties port.PropertyStoragePort
}

func NewCreateTenantUseCase(tenants port.TenantStoragePort, properties port.PropertyStoragePort) *CreateTenantUseCase {
	return &CreateTenantUseCase{tenants: tenants, properties: properties}
}

func (uc *CreateTenantUseCase) Execute(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateTenant",
		"property_id": tenant.PropertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	// Арендатор обязан ссылаться на существующий объект.
	if _, err := uc.properties.FindByID(ctx, tenant.PropertyID); err != nil {
		ucLogger.Warn("Referenced property not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	if tenant.Status == "" {
		tenant.Status = domain.TenantStatusActive
	}
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = time.Now()
	}

	if err := uc.tenants.Save(ctx, tenant); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"tenant_id": tenant.ID.String()})

	return &tenant, nil
}
