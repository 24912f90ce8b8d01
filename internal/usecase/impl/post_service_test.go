package impl

import (
	"context"
	"math"
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

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service     usecase.PostUsecase
	txManager   *mockRepo.MockTransactionManager
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t, &mockRepo.MockRepositoryFactory{
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
	})
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPostService(PostServiceParams{
		Config:    newTestConfig(50),
		TxManager: txManager,
		PostRepo:  postRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{
		service:     service,
		txManager:   txManager,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.ContentEvent) bool {
		return e.Type == eventType && e.EventID != ""
	})
}

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	alice := newTestUser(1, "alice")

	fx.postRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Title == "Hello" && p.Content == "World" && p.AuthorID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Post).ID = 10
	}).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, eventOfType(service.EventPostCreated)).Return(nil)

	post, err := fx.service.Create(ctx, alice, usecase.PostInput{Title: "  Hello ", Content: "World\n"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Same(t, alice, post.Author)
}

func TestPostService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.PostInput
		wantErr error
	}{
		{name: "blank title", input: usecase.PostInput{Title: "   ", Content: "body"}, wantErr: domainerrors.ErrEmptyTitle},
		{name: "blank content", input: usecase.PostInput{Title: "title", Content: "\t"}, wantErr: domainerrors.ErrEmptyContent},
		{name: "long title", input: usecase.PostInput{Title: strings.Repeat("a", 201), Content: "body"}, wantErr: domainerrors.ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)

			_, err := fx.service.Create(context.Background(), newTestUser(1, "alice"), tt.input)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestPostService_Create_Unauthenticated(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Create(context.Background(), nil, usecase.PostInput{Title: "t", Content: "c"})
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
}

func TestPostService_Create_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("Create", ctx, mock.Anything).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.Create(ctx, newTestUser(1, "alice"), usecase.PostInput{Title: "t", Content: "c"})
	assert.NoError(t, err)
}

func TestPostService_Get_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.Get(ctx, 99)
	assert.Equal(t, domainerrors.ErrPostNotFound, err)
}

func TestPostService_List(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	posts := []*entity.Post{{ID: 3}, {ID: 2}}

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("Count", ctx).Return(int64(5), nil)
	fx.postRepo.On("List", ctx, 2, 2).Return(posts, nil)

	page, err := fx.service.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, posts, page.Items)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PageSize)
}

func TestPostService_List_EmptyPage(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("Count", ctx).Return(int64(0), nil)
	fx.postRepo.On("List", ctx, 0, 20).Return(nil, nil)

	page, err := fx.service.List(ctx, 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPostService_List_PageBeyondAddressableRange(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("Count", ctx).Return(int64(1), nil)

	hugePage := math.MaxInt/2 + 2
	page, err := fx.service.List(ctx, hugePage, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, hugePage, page.Page)
	fx.postRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantOK     bool
	}{
		{name: "first page", page: 1, pageSize: 20, wantOffset: 0, wantOK: true},
		{name: "third page", page: 3, pageSize: 20, wantOffset: 40, wantOK: true},
		{name: "largest page that fits", page: math.MaxInt/50 + 1, pageSize: 50, wantOffset: (math.MaxInt / 50) * 50, wantOK: true},
		{name: "overflowing page", page: math.MaxInt/50 + 2, pageSize: 50, wantOK: false},
		{name: "max int page", page: math.MaxInt, pageSize: 2, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, ok := pageOffset(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOffset, offset)
				assert.GreaterOrEqual(t, offset, 0)
			}
		})
	}
}

func TestPostService_List_InvalidArguments(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.List(ctx, 0, 10)
	assert.Equal(t, domainerrors.ErrInvalidPage, err)

	_, err = fx.service.List(ctx, 1, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Equal(t, "Page size must be between 1 and 50", err.Error())

	_, err = fx.service.List(ctx, 1, 51)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestPostService_Update_Owner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	alice := newTestUser(1, "alice")
	existing := &entity.Post{ID: 5, Title: "old", Content: "old", AuthorID: 1, Author: alice}

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(existing, nil)
	fx.postRepo.On("Update", ctx, existing).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, eventOfType(service.EventPostUpdated)).Return(nil)

	post, err := fx.service.Update(ctx, alice, 5, usecase.PostInput{Title: "new", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "body", post.Content)
}

func TestPostService_Update_NotOwner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	existing := &entity.Post{ID: 5, Title: "old", Content: "old", AuthorID: 1}

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(existing, nil)

	_, err := fx.service.Update(ctx, newTestUser(2, "bob"), 5, usecase.PostInput{Title: "new", Content: "body"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "Only the post author can update this post", errors.Cause(err).Error())
	assert.Equal(t, "old", existing.Title)
	fx.postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPostService_Update_NotFoundBeforeValidation(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.Update(ctx, newTestUser(1, "alice"), 404, usecase.PostInput{Title: "", Content: ""})
	assert.Equal(t, domainerrors.ErrPostNotFound, errors.Cause(err))
}

func TestPostService_Update_ForbiddenBeforeValidation(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(&entity.Post{ID: 5, AuthorID: 1}, nil)

	_, err := fx.service.Update(ctx, newTestUser(2, "bob"), 5, usecase.PostInput{Title: "", Content: ""})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPostService_Delete_Owner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(&entity.Post{ID: 5, AuthorID: 1}, nil)
	fx.commentRepo.On("DeleteByPost", ctx, int64(5)).Return(nil)
	fx.postRepo.On("Delete", ctx, int64(5)).Return(nil)
	fx.publisher.On("PublishContentEvent", ctx, eventOfType(service.EventPostDeleted)).Return(nil)

	err := fx.service.Delete(ctx, newTestUser(1, "alice"), 5)
	assert.NoError(t, err)
}

func TestPostService_Delete_NotOwner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.postRepo.On("FindByID", ctx, int64(5)).Return(&entity.Post{ID: 5, AuthorID: 1}, nil)

	err := fx.service.Delete(ctx, newTestUser(2, "bob"), 5)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "Only the post author can delete this post", errors.Cause(err).Error())
	fx.postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.commentRepo.AssertNotCalled(t, "DeleteByPost", mock.Anything, mock.Anything)
}

func TestPostService_Delete_TransactionError(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	txErr := errors.New("begin failed")

	fx.txManager.On("Execute", mock.Anything).Return(txErr)

	err := fx.service.Delete(ctx, newTestUser(1, "alice"), 5)
	assert.ErrorIs(t, err, txErr)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 0, totalPages(5, 0))
}
