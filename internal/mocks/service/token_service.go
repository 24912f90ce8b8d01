package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock and asserts its expectations on cleanup
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
