// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// MockUserUseCase is a mock implementation of UserUseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(ctx context.Context, input userDomain.CreateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// Update mocks the Update method of UserUseCase.
func (m *MockUserUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}
