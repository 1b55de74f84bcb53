package catalog

import "context"

// Repository defines the interface for content item storage.
//
// Implementations own every stored item: values passed in are copied and
// values returned are copies, so callers never hold a live reference.
type Repository interface {
	// Insert assigns a fresh id, stores the item (counters included) and
	// returns the id.
	Insert(ctx context.Context, item *ContentItem) (string, error)
	Get(ctx context.Context, id string) (*ContentItem, error)
	// Replace overwrites every field except id, views and likes.
	Replace(ctx context.Context, id string, item *ContentItem) (*ContentItem, error)
	Remove(ctx context.Context, id string) error
	// All returns a point-in-time copy of every item in insertion order.
	All(ctx context.Context) ([]*ContentItem, error)

	// View adds one view and returns a copy of the item taken together with
	// that increment, so the fields and the count describe the same state.
	View(ctx context.Context, id string) (*ContentItem, error)
	// IncrementLikes is atomic per item and returns the new value.
	IncrementLikes(ctx context.Context, id string) (int64, error)
}

// EventSink defines the interface for event handling
type EventSink interface {
	// ContentCreated is fired when content is created
	ContentCreated(ctx context.Context, item *ContentItem) error

	// ContentUpdated is fired when content is replaced
	ContentUpdated(ctx context.Context, item *ContentItem) error

	// ContentDeleted is fired when content is deleted
	ContentDeleted(ctx context.Context, id string) error

	// ContentViewed is fired after a view has been recorded
	ContentViewed(ctx context.Context, id string, views int64) error

	// ContentLiked is fired after a like has been recorded
	ContentLiked(ctx context.Context, id string, likes int64) error
}
