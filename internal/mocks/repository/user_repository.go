// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock and asserts its expectations on cleanup
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userOrNil(args.Get(0)), args.Error(1)
}

func userOrNil(v any) *entity.User {
	if v == nil {
		return nil
	}

	return v.(*entity.User)
}
