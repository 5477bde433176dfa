package port

import (
	"context"

	"property-management-service/internal/core/domain"
)

// UserRepositoryPort - контракт хранилища пользователей.
// FindByEmail возвращает (nil, nil), если пользователь не найден.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
