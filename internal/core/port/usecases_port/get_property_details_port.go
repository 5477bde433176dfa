package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"property-management-service/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetailsView, error)
}
