// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Login mocks the Login method of AuthUseCase.
func (m *MockAuthUseCase) Login(ctx context.Context, username string, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

// Logout mocks the Logout method of AuthUseCase.
func (m *MockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Authenticate mocks the Authenticate method of AuthUseCase.
func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// PurgeExpired mocks the PurgeExpired method of AuthUseCase.
func (m *MockAuthUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// CountExpired mocks the CountExpired method of AuthUseCase.
func (m *MockAuthUseCase) CountExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
