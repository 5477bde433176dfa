package usecase

import (
	"context"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type RegisterUserUseCase struct {
	users port.UserRepositoryPort
}

func NewRegisterUserUseCase(users port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, email, password, role string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    email,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Failed to check existing user", err, nil)
		return nil, err
	}
	if existing != nil {
		ucLogger.Warn("User already exists", nil)
		return nil, domain.ErrEmailAlreadyExists
	}

	user, err := domain.NewUser(email, password, role)
	if err != nil {
		ucLogger.Error("Failed to build user", err, nil)
		return nil, err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID.String()})

	return user, nil
}
