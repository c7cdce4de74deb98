// Package mocks provides mock implementations for testing group use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	groupDomain "github.com/allisson/messaging/internal/group/domain"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// MockGroupRepository is a mock implementation of GroupRepository for testing.
type MockGroupRepository struct {
	mock.Mock
}

// Create mocks the Create method of GroupRepository.
func (m *MockGroupRepository) Create(ctx context.Context, group *groupDomain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// GetByID mocks the GetByID method of GroupRepository.
func (m *MockGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*groupDomain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupDomain.Group), args.Error(1)
}

// Delete mocks the Delete method of GroupRepository.
func (m *MockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SearchByName mocks the SearchByName method of GroupRepository.
func (m *MockGroupRepository) SearchByName(ctx context.Context, name string) ([]*groupDomain.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*groupDomain.Group), args.Error(1)
}

// AddMember mocks the AddMember method of GroupRepository.
func (m *MockGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

// RemoveMember mocks the RemoveMember method of GroupRepository.
func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method of UserRepository.
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository for testing.
type MockMessageRepository struct {
	mock.Mock
}

// DeleteByGroup mocks the DeleteByGroup method of MessageRepository.
func (m *MockMessageRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}
