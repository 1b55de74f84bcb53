package catalog

import (
	"context"
	"log/slog"
)

// EngagementTracker owns the view and like counters of stored items. It only
// mutates counters of existing items and never creates one.
type EngagementTracker struct {
	repository Repository
	eventSink  EventSink
}

// NewEngagementTracker creates a tracker over repo. sink may be nil.
func NewEngagementTracker(repo Repository, sink EventSink) *EngagementTracker {
	return &EngagementTracker{repository: repo, eventSink: sink}
}

// RecordView adds exactly one view to the item and returns the item as it
// was at that view, its Views field carrying the new count.
func (t *EngagementTracker) RecordView(ctx context.Context, id string) (*ContentItem, error) {
	item, err := t.repository.View(ctx, id)
	if err != nil {
		return nil, &ContentError{ContentID: id, Op: "record_view", Err: err}
	}
	if t.eventSink != nil {
		if err := t.eventSink.ContentViewed(ctx, id, item.Views); err != nil {
			slog.Warn("Event sink failed", "event", "content_viewed", "content_id", id, "error", err)
		}
	}
	return item, nil
}

// RecordLike adds exactly one like to the item and returns the new count.
func (t *EngagementTracker) RecordLike(ctx context.Context, id string) (int64, error) {
	likes, err := t.repository.IncrementLikes(ctx, id)
	if err != nil {
		return 0, &ContentError{ContentID: id, Op: "record_like", Err: err}
	}
	if t.eventSink != nil {
		if err := t.eventSink.ContentLiked(ctx, id, likes); err != nil {
			slog.Warn("Event sink failed", "event", "content_liked", "content_id", id, "error", err)
		}
	}
	return likes, nil
}
