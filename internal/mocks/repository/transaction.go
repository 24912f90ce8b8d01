package repository

import (
	"context"
	"testing"

	"blog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager records Execute calls. Unless the expectation returns
// an error, fn runs against Factory as if inside a committed transaction.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager creates a mock bound to factory and asserts its expectations on cleanup
func NewMockTransactionManager(t *testing.T, factory repository.RepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out fixed repositories.
type MockRepositoryFactory struct {
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
}

func (f *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *MockRepositoryFactory) NewPostRepository() repository.PostRepository {
	return f.PostRepo
}

func (f *MockRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return f.CommentRepo
}
