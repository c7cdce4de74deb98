package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authHTTP "github.com/allisson/messaging/internal/auth/http"
	authMocks "github.com/allisson/messaging/internal/auth/http/mocks"
	groupDomain "github.com/allisson/messaging/internal/group/domain"
	groupHTTP "github.com/allisson/messaging/internal/group/http"
	groupMocks "github.com/allisson/messaging/internal/group/http/mocks"
	messageHTTP "github.com/allisson/messaging/internal/message/http"
	messageMocks "github.com/allisson/messaging/internal/message/http/mocks"
	userHTTP "github.com/allisson/messaging/internal/user/http"
	userMocks "github.com/allisson/messaging/internal/user/http/mocks"
)

type routerFixture struct {
	server    *Server
	authUC    *authMocks.MockAuthUseCase
	userUC    *userMocks.MockUserUseCase
	groupUC   *groupMocks.MockGroupUseCase
	messageUC *messageMocks.MockMessageUseCase
}

// newRouterFixture wires the full route table with mocked use cases so the
// route and middleware composition can be exercised end to end.
func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &routerFixture{
		authUC:    &authMocks.MockAuthUseCase{},
		userUC:    &userMocks.MockUserUseCase{},
		groupUC:   &groupMocks.MockGroupUseCase{},
		messageUC: &messageMocks.MockMessageUseCase{},
	}

	handlers := Handlers{
		Auth:    authHTTP.NewAuthHandler(f.authUC, logger),
		User:    userHTTP.NewUserHandler(f.userUC, logger),
		Group:   groupHTTP.NewGroupHandler(f.groupUC, logger),
		Message: messageHTTP.NewMessageHandler(f.messageUC, logger),
	}
	middlewares := Middlewares{
		Authentication: authHTTP.AuthenticationMiddleware(f.authUC, logger),
		AdminOnly:      authHTTP.AdminOnlyMiddleware(logger),
	}

	f.server = NewServer(nil, "localhost", 8080, logger)
	f.server.SetupRouter(handlers, middlewares, RouterConfig{GinMode: gin.TestMode})

	return f
}

func (f *routerFixture) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.server.GetHandler().ServeHTTP(w, req)
	return w
}

func TestRouter_LoginIsOpen(t *testing.T) {
	f := newRouterFixture(t)

	f.authUC.On("Login", mock.Anything, "alice", "pw123").Return("signed-token", nil).Once()

	w := f.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "pw123",
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer signed-token", response["token"])
	assert.Equal(t, "Login successful", response["message"])
}

func TestRouter_ProtectedRoutesRequireAuthentication(t *testing.T) {
	f := newRouterFixture(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/groups"},
		{http.MethodGet, "/api/v1/groups"},
		{http.MethodPost, "/api/v1/messages/" + uuid.Must(uuid.NewV7()).String()},
		{http.MethodPost, "/api/v1/admin/users/register"},
	}

	for _, p := range paths {
		w := f.do(p.method, p.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRouter_AuthenticatedGroupSearch(t *testing.T) {
	f := newRouterFixture(t)

	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7())}
	f.authUC.On("Authenticate", mock.Anything, "valid-token").Return(identity, nil).Once()
	f.groupUC.On("Search", mock.Anything, "end").Return([]*groupDomain.Group{}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/groups?name=end", nil, "valid-token")

	assert.Equal(t, http.StatusOK, w.Code)
	f.groupUC.AssertExpectations(t)
}

func TestRouter_AdminRoutesRejectNonAdmins(t *testing.T) {
	f := newRouterFixture(t)

	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7()), IsAdmin: false}
	f.authUC.On("Authenticate", mock.Anything, "member-token").Return(identity, nil)

	w := f.do(http.MethodPost, "/api/v1/admin/users/register", map[string]string{
		"username": "bob",
		"password": "pw123",
	}, "member-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	groupID := uuid.Must(uuid.NewV7())
	w = f.do(http.MethodDelete, "/api/v1/groups/"+groupID.String()+"/member", map[string]string{
		"userId": uuid.Must(uuid.NewV7()).String(),
	}, "member-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.userUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.groupUC.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_MemberRemovalAllowsAdmins(t *testing.T) {
	f := newRouterFixture(t)

	groupID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7()), IsAdmin: true}

	f.authUC.On("Authenticate", mock.Anything, "admin-token").Return(identity, nil).Once()
	f.groupUC.On("RemoveMember", mock.Anything, groupID, userID).
		Return(&groupDomain.Group{ID: groupID, Name: "backend"}, nil).
		Once()

	w := f.do(http.MethodDelete, "/api/v1/groups/"+groupID.String()+"/member", map[string]string{
		"userId": userID.String(),
	}, "admin-token")

	assert.Equal(t, http.StatusOK, w.Code)
	f.groupUC.AssertExpectations(t)
}

func TestRouter_HealthAndReady(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/ready", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodGet, "/nonexistent", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
