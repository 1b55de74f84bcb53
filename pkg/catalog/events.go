package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LoggingEventSink writes every catalog event as a structured log record.
// Each record carries a fresh event_id so that log pipelines can dedupe.
type LoggingEventSink struct {
	logger *slog.Logger
}

// NewLoggingEventSink creates an event sink that logs to logger, or to
// slog.Default() when logger is nil.
func NewLoggingEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingEventSink{logger: logger}
}

func (l *LoggingEventSink) emit(ctx context.Context, event string, attrs ...any) {
	attrs = append([]any{"event", event, "event_id", uuid.NewString()}, attrs...)
	l.logger.InfoContext(ctx, "Catalog event", attrs...)
}

func (l *LoggingEventSink) ContentCreated(ctx context.Context, item *ContentItem) error {
	l.emit(ctx, "content_created", "content_id", item.ID, "author_id", item.AuthorID)
	return nil
}

func (l *LoggingEventSink) ContentUpdated(ctx context.Context, item *ContentItem) error {
	l.emit(ctx, "content_updated", "content_id", item.ID)
	return nil
}

func (l *LoggingEventSink) ContentDeleted(ctx context.Context, id string) error {
	l.emit(ctx, "content_deleted", "content_id", id)
	return nil
}

func (l *LoggingEventSink) ContentViewed(ctx context.Context, id string, views int64) error {
	l.emit(ctx, "content_viewed", "content_id", id, "views", views)
	return nil
}

func (l *LoggingEventSink) ContentLiked(ctx context.Context, id string, likes int64) error {
	l.emit(ctx, "content_liked", "content_id", id, "likes", likes)
	return nil
}
