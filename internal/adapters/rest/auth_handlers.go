package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port/usecases_port"
)

type AuthHandler struct {
	registerUserUC usecases_port.RegisterUserUseCase
	loginUserUC    usecases_port.LoginUserUseCase
}

func NewAuthHandler(registerUserUC usecases_port.RegisterUserUseCase,
	loginUserUC usecases_port.LoginUserUseCase) *AuthHandler {
	return &AuthHandler{
		registerUserUC: registerUserUC,
		loginUserUC:    loginUserUC,
	}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "Fields 'email' and 'password' are required")
		return
	}

	user, err := h.registerUserUC.Execute(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			WriteJSONError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		logger.Error("Failed to register user", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	RespondWithJSON(w, http.StatusCreated, RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.loginUserUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Failed to login user", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to login user")
		return
	}

	RespondWithJSON(w, http.StatusOK, LoginResponse{AccessToken: token})
}
