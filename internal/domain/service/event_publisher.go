package service

import (
	"context"
	"time"
)

// Content event types
const (
	EventPostCreated    = "post.created"
	EventPostUpdated    = "post.updated"
	EventPostDeleted    = "post.deleted"
	EventCommentCreated = "comment.created"
	EventCommentUpdated = "comment.updated"
	EventCommentDeleted = "comment.deleted"
)

// ContentEvent describes a change to a post or comment
type ContentEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	PostID     int64     `json:"post_id"`
	CommentID  int64     `json:"comment_id,omitempty"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content change event
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
