package pubsub

import (
	"strconv"

	"blog/internal/domain/service"
)

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.ContentEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"post_id":  strconv.FormatInt(event.PostID, 10),
	}
	if event.CommentID != 0 {
		attributes["comment_id"] = strconv.FormatInt(event.CommentID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
