package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"property-management-service/internal/core/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	args := m.Called(ctx, user, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claims), args.Error(1)
}

func TestRegisterUser_Success(t *testing.T) {
	users := new(mockUserRepository)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	uc := NewRegisterUserUseCase(users)

	user, err := uc.Execute(context.Background(), "new@example.com", "password", "admin")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, user.CheckPassword("password"))

	users.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	existing, err := domain.NewUser("dup@example.com", "password", "manager")
	require.NoError(t, err)

	users := new(mockUserRepository)
	users.On("FindByEmail", mock.Anything, "dup@example.com").Return(existing, nil)

	uc := NewRegisterUserUseCase(users)

	_, err = uc.Execute(context.Background(), "dup@example.com", "password", "manager")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginUser_Success(t *testing.T) {
	user, err := domain.NewUser("manager@example.com", "s3cret", "manager")
	require.NoError(t, err)

	users := new(mockUserRepository)
	users.On("FindByEmail", mock.Anything, "manager@example.com").Return(user, nil)

	tokens := new(mockTokenService)
	tokens.On("GenerateToken", mock.Anything, user, time.Hour).Return("signed-token", nil)

	uc := NewLoginUserUseCase(users, tokens, time.Hour)

	token, err := uc.Execute(context.Background(), "manager@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	user, err := domain.NewUser("manager@example.com", "s3cret", "manager")
	require.NoError(t, err)

	users := new(mockUserRepository)
	users.On("FindByEmail", mock.Anything, "manager@example.com").Return(user, nil)
	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	tokens := new(mockTokenService)
	uc := NewLoginUserUseCase(users, tokens, time.Hour)

	// Неверный пароль
	_, err = uc.Execute(context.Background(), "manager@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Несуществующий пользователь: та же ошибка, без утечки информации
	_, err = uc.Execute(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}
