package port

import (
	"context"

	"github.com/google/uuid"

	"property-management-service/internal/core/domain"
)

// PropertyStoragePort - контракт хранилища объектов недвижимости.
// FindWithFilters возвращает страницу данных и общее число строк,
// попавших под фильтр; limit <= 0 означает "без пагинации".
type PropertyStoragePort interface {
	Save(ctx context.Context, property domain.Property) error
	FindByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
	FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters, limit, offset int) ([]domain.Property, int, error)
}
