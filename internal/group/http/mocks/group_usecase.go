// Package mocks provides mock implementations for testing group HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	groupDomain "github.com/allisson/messaging/internal/group/domain"
)

// MockGroupUseCase is a mock implementation of GroupUseCase for testing.
type MockGroupUseCase struct {
	mock.Mock
}

// Create mocks the Create method of GroupUseCase.
func (m *MockGroupUseCase) Create(ctx context.Context, name string) (*groupDomain.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupDomain.Group), args.Error(1)
}

// Delete mocks the Delete method of GroupUseCase.
func (m *MockGroupUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AddMember mocks the AddMember method of GroupUseCase.
func (m *MockGroupUseCase) AddMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupDomain.Group), args.Error(1)
}

// RemoveMember mocks the RemoveMember method of GroupUseCase.
func (m *MockGroupUseCase) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupDomain.Group), args.Error(1)
}

// Search mocks the Search method of GroupUseCase.
func (m *MockGroupUseCase) Search(ctx context.Context, name string) ([]*groupDomain.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*groupDomain.Group), args.Error(1)
}
