package catalog

import "context"

// Service defines the main interface of the catalog
type Service interface {
	// Content operations
	CreateContent(ctx context.Context, draft Draft) (*ContentItem, error)
	// GetContent returns the item and records one view against it.
	GetContent(ctx context.Context, id string) (*ContentItem, error)
	UpdateContent(ctx context.Context, id string, draft Draft) (*ContentItem, error)
	DeleteContent(ctx context.Context, id string) error

	// Read-only listings; these never record views.
	ListContent(ctx context.Context, q Query) ([]*ContentItem, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*ContentItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListTags(ctx context.Context) ([]string, error)

	// Engagement
	LikeContent(ctx context.Context, id string) (int64, error)
}
