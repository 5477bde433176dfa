package port

import (
	"context"
	"time"

	"property-management-service/internal/core/domain"
)

// TokenServicePort - контракт сервиса токенов доступа.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
