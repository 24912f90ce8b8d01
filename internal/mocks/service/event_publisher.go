package service

import (
	"context"
	"testing"

	"blog/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of service.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock and asserts its expectations on cleanup
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishContentEvent(ctx context.Context, event *service.ContentEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
