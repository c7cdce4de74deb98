package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authHTTP "github.com/allisson/messaging/internal/auth/http"
	messageDomain "github.com/allisson/messaging/internal/message/domain"
	"github.com/allisson/messaging/internal/message/http/dto"
	httpMocks "github.com/allisson/messaging/internal/message/http/mocks"
)

func setupMessageTestHandler(t *testing.T) (*MessageHandler, *httpMocks.MockMessageUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockMessageUseCase := &httpMocks.MockMessageUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewMessageHandler(mockMessageUseCase, logger)

	return handler, mockMessageUseCase
}

// createTestContext builds a gin test context with a JSON body and, when
// identity is non-nil, an authenticated identity in the request context.
func createTestContext(method, path string, body interface{}, identity *authDomain.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if identity != nil {
		req = req.WithContext(authHTTP.WithIdentity(req.Context(), identity))
	}
	c.Request = req

	return c, w
}

func TestMessageHandler_SendMessageHandler(t *testing.T) {
	groupID := uuid.Must(uuid.NewV7())
	senderID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: senderID}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		message := &messageDomain.Message{
			ID:        uuid.Must(uuid.NewV7()),
			GroupID:   groupID,
			SenderID:  senderID,
			Text:      "hello",
			CreatedAt: time.Now().UTC(),
		}

		mockUseCase.On("Send", mock.Anything, groupID, senderID, "hello").Return(message, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String(), dto.SendMessageRequest{
			Text: "hello",
		}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.SendMessageHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.MessageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Message sent successfully", response.Message)
		assert.Equal(t, "hello", response.MessageDetails.Text)
		assert.Equal(t, senderID, response.MessageDetails.SenderID)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingIdentityIs401", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String(), dto.SendMessageRequest{
			Text: "hello",
		}, nil)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.SendMessageHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingText", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String(), dto.SendMessageRequest{}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.SendMessageHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidGroupUUID", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/not-a-uuid", dto.SendMessageRequest{
			Text: "hello",
		}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: "not-a-uuid"}}

		handler.SendMessageHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMessageHandler_LikeMessageHandler(t *testing.T) {
	groupID := uuid.Must(uuid.NewV7())
	messageID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}

	t.Run("LikeToggleOn", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		message := &messageDomain.Message{ID: messageID, GroupID: groupID, Likes: []uuid.UUID{userID}}
		mockUseCase.On("Like", mock.Anything, messageID, identity).Return(message, true, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String()+"/like", dto.LikeMessageRequest{
			MessageID: messageID.String(),
		}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.LikeMessageHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.MessageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Liked message successfully", response.Message)
		assert.Contains(t, response.MessageDetails.Likes, userID)
	})

	t.Run("LikeToggleOff", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		message := &messageDomain.Message{ID: messageID, GroupID: groupID}
		mockUseCase.On("Like", mock.Anything, messageID, identity).Return(message, false, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String()+"/like", dto.LikeMessageRequest{
			MessageID: messageID.String(),
		}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.LikeMessageHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.MessageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Unliked message successfully", response.Message)
		assert.Empty(t, response.MessageDetails.Likes)
	})

	t.Run("Error_UnknownMessageIs404", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		mockUseCase.On("Like", mock.Anything, messageID, identity).
			Return(nil, false, messageDomain.ErrMessageNotFound).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String()+"/like", dto.LikeMessageRequest{
			MessageID: messageID.String(),
		}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.LikeMessageHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Message not found", response["message"])
	})

	t.Run("Error_MissingMessageID", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/messages/"+groupID.String()+"/like", dto.LikeMessageRequest{}, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.LikeMessageHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMessageHandler_ListMessagesHandler(t *testing.T) {
	groupID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7())}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		messages := []*messageDomain.Message{
			{ID: uuid.Must(uuid.NewV7()), GroupID: groupID, Text: "first"},
			{ID: uuid.Must(uuid.NewV7()), GroupID: groupID, Text: "second"},
		}

		mockUseCase.On("ListByGroup", mock.Anything, groupID).Return(messages, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/v1/messages/"+groupID.String(), nil, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.ListMessagesHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.MessageListEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Fetched all messages successfully", response.Message)
		assert.Len(t, response.Messages, 2)
	})

	t.Run("EmptyGroupReturnsEmptyList", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		mockUseCase.On("ListByGroup", mock.Anything, groupID).Return([]*messageDomain.Message{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/v1/messages/"+groupID.String(), nil, identity)
		c.Params = gin.Params{{Key: "groupId", Value: groupID.String()}}

		handler.ListMessagesHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.MessageListEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Messages)
	})
}

func TestMessageHandler_DeleteMessageHandler(t *testing.T) {
	groupID := uuid.Must(uuid.NewV7())
	messageID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}

	path := "/api/v1/messages/" + groupID.String() + "/" + messageID.String()
	params := gin.Params{
		{Key: "groupId", Value: groupID.String()},
		{Key: "messageId", Value: messageID.String()},
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, messageID, identity).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, path, nil, identity)
		c.Params = params

		handler.DeleteMessageHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.StatusEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Message deleted successfully", response.Message)
	})

	t.Run("Error_NotSenderIs403WithExactMessage", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, messageID, identity).
			Return(messageDomain.ErrDeleteForbidden).
			Once()

		c, w := createTestContext(http.MethodDelete, path, nil, identity)
		c.Params = params

		handler.DeleteMessageHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "You don't have permission to delete this message.", response["message"])
	})

	t.Run("Error_UnknownMessageIs404", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, messageID, identity).
			Return(messageDomain.ErrMessageNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, path, nil, identity)
		c.Params = params

		handler.DeleteMessageHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidMessageUUID", func(t *testing.T) {
		handler, mockUseCase := setupMessageTestHandler(t)

		c, w := createTestContext(http.MethodDelete, "/api/v1/messages/"+groupID.String()+"/not-a-uuid", nil, identity)
		c.Params = gin.Params{
			{Key: "groupId", Value: groupID.String()},
			{Key: "messageId", Value: "not-a-uuid"},
		}

		handler.DeleteMessageHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
