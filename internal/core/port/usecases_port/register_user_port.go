package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, email, password, role string) (*domain.User, error)
}
