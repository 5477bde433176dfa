package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_HashesPassword(t *testing.T) {
	user, err := NewUser("manager@example.com", "s3cret", "manager")
	require.NoError(t, err)

	assert.Equal(t, "manager@example.com", user.Email)
	assert.Equal(t, "manager", user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	assert.True(t, user.CheckPassword("s3cret"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestNewUser_DefaultRole(t *testing.T) {
	user, err := NewUser("viewer@example.com", "password", "")
	require.NoError(t, err)

	assert.Equal(t, "manager", user.Role)
}

func TestNewUser_RequiresEmailAndPassword(t *testing.T) {
	_, err := NewUser("", "password", "admin")
	assert.Error(t, err)

	_, err = NewUser("user@example.com", "", "admin")
	assert.Error(t, err)
}
