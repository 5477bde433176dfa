package usecase

import (
	"context"

	"github.com/google/uuid"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// GetPropertyDetailsUseCase собирает карточку объекта: сам объект
// плюс список его арендаторов.
type GetPropertyDetailsUseCase struct {
	properties port.PropertyStoragePort
	tenants    port.TenantStoragePort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyStoragePort, tenants port.TenantStoragePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, tenants: tenants}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	tenants, _, err := uc.tenants.FindWithFilters(ctx, domain.FindTenantsFilters{
		PropertyIDs: []string{propertyID.String()},
	}, 0, 0)
	if err != nil {
		ucLogger.Error("Failed to fetch property tenants", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"tenants_found": len(tenants)})

	return &domain.PropertyDetailsView{
		Property: *property,
		Tenants:  tenants,
	}, nil
}
