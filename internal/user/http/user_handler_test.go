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

	userDomain "github.com/allisson/messaging/internal/user/domain"
	"github.com/allisson/messaging/internal/user/http/dto"
	httpMocks "github.com/allisson/messaging/internal/user/http/mocks"
)

func setupUserTestHandler(t *testing.T) (*UserHandler, *httpMocks.MockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUserUseCase := &httpMocks.MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewUserHandler(mockUserUseCase, logger)

	return handler, mockUserUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestUserHandler_CreateUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		now := time.Now().UTC()
		user := &userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "alice",
			Password:  "argon2id-hash",
			IsAdmin:   false,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mockUseCase.On("Create", mock.Anything, userDomain.CreateUserInput{
			Username: "alice",
			Password: "pw123",
		}).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/admin/users", dto.CreateUserRequest{
			Username: "alice",
			Password: "pw123",
		})

		handler.CreateUserHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "User created successfully", response.Message)
		assert.Equal(t, "alice", response.User.Username)

		// The password hash must never leak into the response.
		assert.NotContains(t, w.Body.String(), "argon2id-hash")
		assert.NotContains(t, w.Body.String(), "password")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingUsername", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/admin/users", dto.CreateUserRequest{
			Password: "pw123",
		})

		handler.CreateUserHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateUsername", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, userDomain.ErrUsernameTaken).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/admin/users", dto.CreateUserRequest{
			Username: "alice",
			Password: "pw123",
		})

		handler.CreateUserHandler(c)

		// Conflicts surface as 400 on this API.
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateUserHandler(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		newUsername := "alice2"
		now := time.Now().UTC()
		user := &userDomain.User{
			ID:        userID,
			Username:  "alice2",
			Password:  "argon2id-hash",
			CreatedAt: now,
			UpdatedAt: now,
		}

		mockUseCase.On("Update", mock.Anything, userID, userDomain.UpdateUserInput{
			Username: &newUsername,
		}).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPut, "/api/v1/admin/users/"+userID.String(), dto.UpdateUserRequest{
			Username: &newUsername,
		})
		c.Params = gin.Params{{Key: "userId", Value: userID.String()}}

		handler.UpdateUserHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "User updated successfully", response.Message)
		assert.Equal(t, "alice2", response.User.Username)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_UnknownUserIs400", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		newUsername := "alice2"
		mockUseCase.On("Update", mock.Anything, userID, mock.Anything).
			Return(nil, userDomain.ErrUserNotFound).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/v1/admin/users/"+userID.String(), dto.UpdateUserRequest{
			Username: &newUsername,
		})
		c.Params = gin.Params{{Key: "userId", Value: userID.String()}}

		handler.UpdateUserHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/api/v1/admin/users/not-a-uuid", dto.UpdateUserRequest{})
		c.Params = gin.Params{{Key: "userId", Value: "not-a-uuid"}}

		handler.UpdateUserHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
