// Package mocks provides mock implementations for testing authentication use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// MockRevokedTokenRepository is a mock implementation of RevokedTokenRepository for testing.
type MockRevokedTokenRepository struct {
	mock.Mock
}

// Create mocks the Create method of RevokedTokenRepository.
func (m *MockRevokedTokenRepository) Create(ctx context.Context, revokedToken *authDomain.RevokedToken) error {
	args := m.Called(ctx, revokedToken)
	return args.Error(0)
}

// Exists mocks the Exists method of RevokedTokenRepository.
func (m *MockRevokedTokenRepository) Exists(ctx context.Context, tokenHash string) (bool, error) {
	args := m.Called(ctx, tokenHash)
	return args.Bool(0), args.Error(1)
}

// PurgeIssuedBefore mocks the PurgeIssuedBefore method of RevokedTokenRepository.
func (m *MockRevokedTokenRepository) PurgeIssuedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

// CountIssuedBefore mocks the CountIssuedBefore method of RevokedTokenRepository.
func (m *MockRevokedTokenRepository) CountIssuedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// GetByUsername mocks the GetByUsername method of UserRepository.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockTokenService is a mock implementation of TokenService for testing.
type MockTokenService struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenService.
func (m *MockTokenService) Issue(userID uuid.UUID, isAdmin bool) (string, error) {
	args := m.Called(userID, isAdmin)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of TokenService.
func (m *MockTokenService) Verify(token string) (*authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

// DecodeIssuedAt mocks the DecodeIssuedAt method of TokenService.
func (m *MockTokenService) DecodeIssuedAt(token string) (time.Time, error) {
	args := m.Called(token)
	return args.Get(0).(time.Time), args.Error(1)
}

// Hash mocks the Hash method of TokenService.
func (m *MockTokenService) Hash(token string) string {
	args := m.Called(token)
	return args.String(0)
}

// MockPasswordService is a mock implementation of PasswordService for testing.
type MockPasswordService struct {
	mock.Mock
}

// Hash mocks the Hash method of PasswordService.
func (m *MockPasswordService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

// Compare mocks the Compare method of PasswordService.
func (m *MockPasswordService) Compare(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}
