package usecases_port

import "context"

// LoginUserUseCase возвращает подписанный JWT при успешной аутентификации.
type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (string, error)
}
