package repository

import (
	"context"
	"testing"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

// NewMockPostRepository creates a mock and asserts its expectations on cleanup
func NewMockPostRepository(t *testing.T) *MockPostRepository {
	m := &MockPostRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Post), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, offset, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Post), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)

	return args.Get(0).(int64), args.Error(1)
}
