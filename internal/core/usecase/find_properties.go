package usecase

import (
	"context"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewFindPropertiesUseCase(storage port.PropertyStoragePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{storage: storage}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.FindPropertiesFilters, limit, offset int) ([]domain.Property, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"filters":  filters,
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	properties, total, err := uc.storage.FindWithFilters(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})

	return properties, total, nil
}
