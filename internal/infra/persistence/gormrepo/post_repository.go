package gormrepo

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post and copies the generated ID and timestamps back.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := &model.PostModel{
		Title:    post.Title,
		Content:  post.Content,
		AuthorID: post.AuthorID,
	}

	if err := repo.db.WithContext(ctx).Omit("Author").Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post with its author.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).Preload("Author").First(&postM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// Update writes title and content and bumps updated_at.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":      post.Title,
			"content":    post.Content,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	post.UpdatedAt = now

	return nil
}

// Delete removes a post by ID.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// List returns a window of posts, newest first.
func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&postMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Count returns the number of posts.
func (repo *postRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count posts")
	}

	return total, nil
}

// CountByAuthor returns the number of posts written by authorID.
func (repo *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("author_id = ?", authorID).
		Count(&total).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count posts by author")
	}

	return total, nil
}

func toPostDomain(m *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		Author:    toUserDomain(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
