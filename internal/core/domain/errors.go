package domain

import "errors"

// Ошибки уровня домена. Адаптеры REST мапят их на HTTP-статусы.
var (
	ErrNotFound           = errors.New("entity not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
