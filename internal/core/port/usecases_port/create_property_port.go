package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.Property) (*domain.Property, error)
}
