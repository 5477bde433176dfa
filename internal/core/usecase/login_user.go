package usecase

import (
	"context"
	"time"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type LoginUserUseCase struct {
	users    port.UserRepositoryPort
	tokens   port.TokenServicePort
	tokenTTL time.Duration
}

func NewLoginUserUseCase(users port.UserRepositoryPort, tokens port.TokenServicePort, tokenTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})

	ucLogger.Info("Use case started", nil)

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Failed to find user", err, nil)
		return "", err
	}
	// Не раскрываем, что именно не совпало: email или пароль.
	if user == nil || !user.CheckPassword(password) {
		ucLogger.Warn("Invalid credentials", nil)
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(ctx, user, uc.tokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token", err, nil)
		return "", err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID.String()})

	return token, nil
}
