package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allisson/messaging/internal/auth/http/dto"
	authUseCase "github.com/allisson/messaging/internal/auth/usecase"
	"github.com/allisson/messaging/internal/httputil"
	customValidation "github.com/allisson/messaging/internal/validation"
)

// AuthHandler handles HTTP requests for login and logout operations.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler authenticates credentials and issues a session token.
// POST /api/v1/auth/login - No authentication required.
// Returns 200 OK with the Bearer-prefixed token, 400 on invalid credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   "Bearer " + token,
		Message: "Login successful",
	})
}

// LogoutHandler revokes the session token carried in the request body.
// POST /api/v1/auth/logout - No authentication required.
// Returns 200 OK on success, 500 when the token is missing or undecodable.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	var req dto.LogoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleErrorGin(c, fmt.Errorf("failed to parse logout request: %w", err), h.logger)
		return
	}

	if req.Token == "" {
		httputil.HandleErrorGin(c, fmt.Errorf("you must provide a token"), h.logger)
		return
	}

	// Accept the token as returned by login, with or without the prefix.
	token := strings.TrimPrefix(req.Token, "Bearer ")

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{
		Message: "Log out successful",
	})
}
