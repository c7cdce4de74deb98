// Package mocks provides mock implementations for testing message HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

// MockMessageUseCase is a mock implementation of MessageUseCase for testing.
type MockMessageUseCase struct {
	mock.Mock
}

// Send mocks the Send method of MessageUseCase.
func (m *MockMessageUseCase) Send(ctx context.Context, groupID, senderID uuid.UUID, text string) (*messageDomain.Message, error) {
	args := m.Called(ctx, groupID, senderID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messageDomain.Message), args.Error(1)
}

// Like mocks the Like method of MessageUseCase.
func (m *MockMessageUseCase) Like(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) (*messageDomain.Message, bool, error) {
	args := m.Called(ctx, messageID, identity)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*messageDomain.Message), args.Bool(1), args.Error(2)
}

// Delete mocks the Delete method of MessageUseCase.
func (m *MockMessageUseCase) Delete(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) error {
	args := m.Called(ctx, messageID, identity)
	return args.Error(0)
}

// ListByGroup mocks the ListByGroup method of MessageUseCase.
func (m *MockMessageUseCase) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messageDomain.Message), args.Error(1)
}
