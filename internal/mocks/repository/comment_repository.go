package repository

import (
	"context"
	"testing"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock implementation of repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a mock and asserts its expectations on cleanup
func NewMockCommentRepository(t *testing.T) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Comment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)

	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Comment), args.Error(1)
	}

	return nil, args.Error(1)
}
