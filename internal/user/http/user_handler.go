// Package http provides HTTP handlers for account management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/messaging/internal/errors"
	"github.com/allisson/messaging/internal/httputil"
	userDomain "github.com/allisson/messaging/internal/user/domain"
	"github.com/allisson/messaging/internal/user/http/dto"
	userUseCase "github.com/allisson/messaging/internal/user/usecase"
	customValidation "github.com/allisson/messaging/internal/validation"
)

// UserHandler handles HTTP requests for account management.
// All routes are admin-only; the route group enforces that.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(
	userUseCase userUseCase.UserUseCase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUserHandler registers a new account.
// POST /api/v1/admin/users/register - Admin only.
// Returns 201 Created; a duplicate username is a 400.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), req.ToCreateUserInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.UserEnvelope{
		User:    dto.ToUserResponse(user),
		Message: "User created successfully",
	})
}

// UpdateUserHandler applies a partial account update.
// PUT /api/v1/admin/users/:userId - Admin only.
// Returns 200 OK; an unknown account is a 400, matching the public contract.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid userId format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, req.ToUpdateUserInput())
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrInvalidInput, "user not found"),
				h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		User:    dto.ToUserResponse(user),
		Message: "User updated successfully",
	})
}
