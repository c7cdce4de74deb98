// Package mocks provides mock implementations for testing database helpers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of TxManager for testing.
// By default the Run helper should invoke the callback so use case logic
// inside the transaction still executes.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// PassthroughTxManager runs the callback directly without a transaction.
// Useful when a test only cares about the logic inside the transaction.
type PassthroughTxManager struct{}

// WithTx invokes the callback with the given context.
func (p *PassthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
