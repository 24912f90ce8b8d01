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

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment and copies the generated ID and timestamps back.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		Content:  comment.Content,
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
	}

	if err := repo.db.WithContext(ctx).Omit("Author", "Post").Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrPostNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a comment with its author.
func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).Preload("Author").First(&commentM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// Update writes content and bumps updated_at.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	comment.UpdatedAt = now

	return nil
}

// Delete removes a comment by ID.
func (repo *commentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByPost removes all comments of a post.
func (repo *commentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	err := repo.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.CommentModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments of post")
	}

	return nil
}

// ListByPost returns the comments of a post, oldest first.
func (repo *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

func toCommentDomain(m *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		Content:   m.Content,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Author:    toUserDomain(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
