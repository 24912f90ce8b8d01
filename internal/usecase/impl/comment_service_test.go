package impl

import (
	"context"
	"strings"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t, &mockRepo.MockRepositoryFactory{
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
	})
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		service:     service,
		txManager:   txManager,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	bob := newTestUser(2, "bob")

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(&entity.Post{ID: 5, AuthorID: 1}, nil)
	fx.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.Content == "nice post" && c.PostID == 5 && c.AuthorID == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Comment).ID = 11
	}).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, eventOfType(service.EventCommentCreated)).Return(nil)

	comment, err := fx.service.Create(ctx, bob, 5, " nice post ")
	require.NoError(t, err)
	assert.Equal(t, int64(11), comment.ID)
	assert.Same(t, bob, comment.Author)
}

func TestCommentService_Create_ValidatesBeforeLookup(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.Create(context.Background(), newTestUser(2, "bob"), 404, "   ")
	assert.Equal(t, domainerrors.ErrEmptyContent, err)

	_, err = fx.service.Create(context.Background(), newTestUser(2, "bob"), 404, strings.Repeat("x", 1001))
	assert.Equal(t, domainerrors.ErrCommentTooLong, err)
}

func TestCommentService_Create_PostNotFound(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.Create(ctx, newTestUser(2, "bob"), 404, "hello")
	assert.Equal(t, domainerrors.ErrPostNotFound, errors.Cause(err))
	fx.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_ListByPost(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	comments := []*entity.Comment{{ID: 1}, {ID: 2}}

	fx.commentRepo.On("ListByPost", ctx, int64(5)).Return(comments, nil)

	got, err := fx.service.ListByPost(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, comments, got)
}

func TestCommentService_ListByPost_UnknownPostIsEmpty(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.commentRepo.On("ListByPost", ctx, int64(404)).Return(nil, nil)

	got, err := fx.service.ListByPost(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCommentService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		principal *entity.User
		content   string
		setup     func(fx commentServiceFixtures, existing *entity.Comment)
		wantErr   error
	}{
		{
			name:      "author updates",
			principal: newTestUser(2, "bob"),
			content:   "edited",
			setup: func(fx commentServiceFixtures, existing *entity.Comment) {
				fx.commentRepo.On("Update", ctx, existing).Return(nil)
				fx.publisher.On("PublishContentEvent", ctx, eventOfType(service.EventCommentUpdated)).Return(nil)
			},
		},
		{
			name:      "other user is forbidden",
			principal: newTestUser(3, "carol"),
			content:   "edited",
			setup:     func(commentServiceFixtures, *entity.Comment) {},
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "author with blank content",
			principal: newTestUser(2, "bob"),
			content:   " ",
			setup:     func(commentServiceFixtures, *entity.Comment) {},
			wantErr:   domainerrors.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)
			existing := &entity.Comment{ID: 11, PostID: 5, AuthorID: 2, Content: "original"}

			fx.txManager.On("Execute", mock.Anything).Return(nil)
			fx.commentRepo.On("FindByID", ctx, int64(11)).Return(existing, nil)
			tt.setup(fx, existing)

			comment, err := fx.service.Update(ctx, tt.principal, 11, tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "original", existing.Content)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "edited", comment.Content)
		})
	}
}

func TestCommentService_Delete_Owner(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.commentRepo.On("FindByID", ctx, int64(11)).Return(&entity.Comment{ID: 11, PostID: 5, AuthorID: 2}, nil)
	fx.commentRepo.On("Delete", ctx, int64(11)).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, mock.MatchedBy(func(e *service.ContentEvent) bool {
		return e.Type == service.EventCommentDeleted && e.PostID == 5 && e.CommentID == 11
	})).Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, newTestUser(2, "bob"), 11))
}

func TestCommentService_Delete_NotFound(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.commentRepo.On("FindByID", ctx, int64(12)).Return(nil, repository.ErrCommentNotFound)

	err := fx.service.Delete(ctx, newTestUser(2, "bob"), 12)
	assert.Equal(t, domainerrors.ErrCommentNotFound, errors.Cause(err))
}

func TestCommentService_Delete_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.commentRepo.On("FindByID", ctx, int64(11)).Return(&entity.Comment{ID: 11, PostID: 5, AuthorID: 2}, nil)

	err := fx.service.Delete(ctx, newTestUser(1, "alice"), 11)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "Only the comment author can delete this comment", errors.Cause(err).Error())
	fx.commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
