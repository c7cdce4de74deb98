// Package mocks provides mock implementations for testing message use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

// MockMessageRepository is a mock implementation of MessageRepository for testing.
type MockMessageRepository struct {
	mock.Mock
}

// Create mocks the Create method of MessageRepository.
func (m *MockMessageRepository) Create(ctx context.Context, message *messageDomain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// GetByID mocks the GetByID method of MessageRepository.
func (m *MockMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*messageDomain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messageDomain.Message), args.Error(1)
}

// ListByGroup mocks the ListByGroup method of MessageRepository.
func (m *MockMessageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messageDomain.Message), args.Error(1)
}

// Delete mocks the Delete method of MessageRepository.
func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AddLike mocks the AddLike method of MessageRepository.
func (m *MockMessageRepository) AddLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, messageID, userID)
	return args.Bool(0), args.Error(1)
}

// RemoveLike mocks the RemoveLike method of MessageRepository.
func (m *MockMessageRepository) RemoveLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, messageID, userID)
	return args.Bool(0), args.Error(1)
}
