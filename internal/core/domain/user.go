package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User - учётная запись пользователя системы.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string // admin | manager | viewer
	CreatedAt    time.Time
}

// NewUser создает нового пользователя с захэшированным паролем.
func NewUser(email, password, role string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if role == "" {
		role = "manager"
	}

	// Хэшируем пароль с использованием bcrypt.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword сравнивает пароль с хэшем.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Claims - данные, которые мы кладем в JWT токен.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}
