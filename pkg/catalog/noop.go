package catalog

import "context"

// NoopEventSink is a no-operation implementation of EventSink
// Useful for production when you don't need event handling or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// ContentCreated does nothing and returns nil
func (n *NoopEventSink) ContentCreated(ctx context.Context, item *ContentItem) error {
	return nil
}

// ContentUpdated does nothing and returns nil
func (n *NoopEventSink) ContentUpdated(ctx context.Context, item *ContentItem) error {
	return nil
}

// ContentDeleted does nothing and returns nil
func (n *NoopEventSink) ContentDeleted(ctx context.Context, id string) error {
	return nil
}

// ContentViewed does nothing and returns nil
func (n *NoopEventSink) ContentViewed(ctx context.Context, id string, views int64) error {
	return nil
}

// ContentLiked does nothing and returns nil
func (n *NoopEventSink) ContentLiked(ctx context.Context, id string, likes int64) error {
	return nil
}
