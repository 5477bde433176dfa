package token_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-management-service/internal/core/domain"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	service, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	user := &domain.User{
		ID:    uuid.New(),
		Email: "manager@example.com",
		Role:  "manager",
	}

	token, err := service.GenerateToken(context.Background(), user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	service, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Email: "x@example.com", Role: "viewer"}

	token, err := service.GenerateToken(context.Background(), user, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenService("key-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("key-two")
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Email: "x@example.com", Role: "viewer"}

	token, err := issuer.GenerateToken(context.Background(), user, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}

func TestNewTokenService_RequiresKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}
