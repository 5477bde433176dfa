package rest

import (
	"context"
	"net/http"
	"strings"

	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// Кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const claimsKey = contextKey("userClaims")

type AuthMiddleware struct {
	tokenService port.TokenServicePort
}

func NewAuthMiddleware(tokenService port.TokenServicePort) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate проверяет Bearer-токен и кладет claims в контекст запроса.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext возвращает claims текущего пользователя, если они есть.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok
}
