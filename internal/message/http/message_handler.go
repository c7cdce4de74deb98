// Package http provides HTTP handlers for message operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authHTTP "github.com/allisson/messaging/internal/auth/http"
	apperrors "github.com/allisson/messaging/internal/errors"
	"github.com/allisson/messaging/internal/httputil"
	"github.com/allisson/messaging/internal/message/http/dto"
	messageUseCase "github.com/allisson/messaging/internal/message/usecase"
	customValidation "github.com/allisson/messaging/internal/validation"
)

// MessageHandler handles HTTP requests for message operations.
// All routes require an authenticated identity in the request context.
type MessageHandler struct {
	messageUseCase messageUseCase.MessageUseCase
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler with required dependencies.
func NewMessageHandler(
	messageUseCase messageUseCase.MessageUseCase,
	logger *slog.Logger,
) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

// SendMessageHandler posts a new message to a group.
// POST /api/v1/messages/:groupId
// Returns 201 Created with the new message.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	groupID, ok := h.groupParam(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	message, err := h.messageUseCase.Send(c.Request.Context(), groupID, identity.UserID, req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageEnvelope{
		MessageDetails: dto.ToMessageResponse(message),
		Message:        "Message sent successfully",
	})
}

// LikeMessageHandler toggles the caller's like on a message.
// POST /api/v1/messages/:groupId/like
// Returns 200 OK; an unknown message is a 404. The response message reports
// whether the toggle liked or unliked.
func (h *MessageHandler) LikeMessageHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.LikeMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	messageID, err := uuid.Parse(req.MessageID)
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid messageId format: must be a valid UUID"),
			h.logger)
		return
	}

	message, liked, err := h.messageUseCase.Like(c.Request.Context(), messageID, identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responseMessage := "Unliked message successfully"
	if liked {
		responseMessage = "Liked message successfully"
	}

	c.JSON(http.StatusOK, dto.MessageEnvelope{
		MessageDetails: dto.ToMessageResponse(message),
		Message:        responseMessage,
	})
}

// ListMessagesHandler fetches every message in a group.
// GET /api/v1/messages/:groupId
func (h *MessageHandler) ListMessagesHandler(c *gin.Context) {
	groupID, ok := h.groupParam(c)
	if !ok {
		return
	}

	messages, err := h.messageUseCase.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageListEnvelope{
		Messages: dto.ToMessageListResponse(messages),
		Message:  "Fetched all messages successfully",
	})
}

// DeleteMessageHandler deletes a message by its ID.
// DELETE /api/v1/messages/:groupId/:messageId
// Only the sender or an administrator may delete; anyone else gets a 403.
func (h *MessageHandler) DeleteMessageHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid messageId format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.messageUseCase.Delete(c.Request.Context(), messageID, identity); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.StatusEnvelope{
		Message: "Message deleted successfully",
	})
}

// requireIdentity fetches the authenticated identity from the request context.
// It writes a 401 response when the gate did not run.
func (h *MessageHandler) requireIdentity(c *gin.Context) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		h.logger.Error("message handler: no authenticated identity in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return identity, true
}

// groupParam parses the group id from the URL path, writing the error
// response itself when it is invalid.
func (h *MessageHandler) groupParam(c *gin.Context) (uuid.UUID, bool) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid groupId format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return groupID, true
}
