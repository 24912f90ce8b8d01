package entity

import "time"

// Post is a blog article written by a single author.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	Author    *User // Populated on reads; nil when the author was not loaded.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the id of the user allowed to modify the post.
func (p *Post) OwnerID() int64 {
	return p.AuthorID
}

// ResourceKind names the resource in authorization messages.
func (p *Post) ResourceKind() string {
	return "post"
}

// PostPage is a page of posts ordered newest first.
type PostPage struct {
	Items      []*Post
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
