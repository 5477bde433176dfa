package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.FindPropertiesFilters, limit, offset int) ([]domain.Property, int, error)
}
