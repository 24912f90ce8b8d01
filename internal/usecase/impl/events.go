package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/service"

	"github.com/google/uuid"
)

// publishContentEvent emits a change notification. Failures are logged and
// never undo the committed mutation.
func publishContentEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.ContentEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishContentEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish content event",
			slog.String("type", event.Type),
			slog.Int64("postID", event.PostID),
			slog.Any("error", err),
		)
	}
}
