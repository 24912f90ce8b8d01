package handler

import (
	"time"

	"blog/internal/domain/entity"
)

// UserResponse is the authenticated view of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserPublic is the view of a user shown next to their content.
type UserPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserProfileResponse is the public profile of a user.
type UserProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	PostCount int64     `json:"post_count"`
}

// PostResponse is the full view of a post.
type PostResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    UserPublic `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PostListItem is a post in a listing, without its content.
type PostListItem struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    UserPublic `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
}

// PostListResponse is one page of posts.
type PostListResponse struct {
	Items      []PostListItem `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// CommentResponse is the view of a comment.
type CommentResponse struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	Author    UserPublic `json:"author"`
	PostID    int64      `json:"post_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toUserPublic(authorID int64, author *entity.User) UserPublic {
	if author == nil {
		return UserPublic{ID: authorID}
	}

	return UserPublic{ID: author.ID, Username: author.Username}
}

func toPostResponse(post *entity.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    toUserPublic(post.AuthorID, post.Author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostListResponse(page *entity.PostPage) PostListResponse {
	items := make([]PostListItem, 0, len(page.Items))
	for _, post := range page.Items {
		items = append(items, PostListItem{
			ID:        post.ID,
			Title:     post.Title,
			Author:    toUserPublic(post.AuthorID, post.Author),
			CreatedAt: post.CreatedAt,
		})
	}

	return PostListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func toCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    toUserPublic(comment.AuthorID, comment.Author),
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func toCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}

	return out
}
