package entity

import "time"

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64
	Content   string
	PostID    int64
	AuthorID  int64
	Author    *User // Populated on reads; nil when the author was not loaded.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the id of the user allowed to modify the comment.
func (c *Comment) OwnerID() int64 {
	return c.AuthorID
}

// ResourceKind names the resource in authorization messages.
func (c *Comment) ResourceKind() string {
	return "comment"
}
