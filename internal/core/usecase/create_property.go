package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"name":     property.Name,
	})

	ucLogger.Info("Use case started", nil)

	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	if property.Status == "" {
		property.Status = domain.PropertyStatusActive
	}
	if property.CreatedAt.IsZero() {
		property.CreatedAt = time.Now()
	}

	if err := uc.storage.Save(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID.String()})

	return &property, nil
}
