package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// service implements the Service interface
type service struct {
	repository Repository
	eventSink  EventSink
	tracker    *EngagementTracker
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink()
	}
	s.tracker = NewEngagementTracker(s.repository, s.eventSink)

	return s, nil
}

// Content operations

func (s *service) CreateContent(ctx context.Context, draft Draft) (*ContentItem, error) {
	item := &ContentItem{}
	draft.apply(item)

	id, err := s.repository.Insert(ctx, item)
	if err != nil {
		return nil, &ContentError{Op: "create", Err: err}
	}
	item.ID = id

	if err := s.eventSink.ContentCreated(ctx, item); err != nil {
		slog.Warn("Event sink failed", "event", "content_created", "content_id", id, "error", err)
	}

	return item, nil
}

func (s *service) GetContent(ctx context.Context, id string) (*ContentItem, error) {
	return s.tracker.RecordView(ctx, id)
}

func (s *service) UpdateContent(ctx context.Context, id string, draft Draft) (*ContentItem, error) {
	replacement := &ContentItem{}
	draft.apply(replacement)

	item, err := s.repository.Replace(ctx, id, replacement)
	if err != nil {
		return nil, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	if err := s.eventSink.ContentUpdated(ctx, item); err != nil {
		slog.Warn("Event sink failed", "event", "content_updated", "content_id", id, "error", err)
	}

	return item, nil
}

func (s *service) DeleteContent(ctx context.Context, id string) error {
	if err := s.repository.Remove(ctx, id); err != nil {
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}

	if err := s.eventSink.ContentDeleted(ctx, id); err != nil {
		slog.Warn("Event sink failed", "event", "content_deleted", "content_id", id, "error", err)
	}

	return nil
}

// Listings

func (s *service) ListContent(ctx context.Context, q Query) ([]*ContentItem, error) {
	items, err := s.repository.All(ctx)
	if err != nil {
		return nil, &ContentError{Op: "list", Err: err}
	}
	result, err := Evaluate(items, q)
	if err != nil {
		return nil, &ContentError{Op: "list", Err: err}
	}
	return result, nil
}

func (s *service) ListByAuthor(ctx context.Context, authorID string) ([]*ContentItem, error) {
	items, err := s.repository.All(ctx)
	if err != nil {
		return nil, &ContentError{Op: "list_by_author", Err: err}
	}

	result := make([]*ContentItem, 0)
	for _, item := range items {
		if item.AuthorID == authorID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	items, err := s.repository.All(ctx)
	if err != nil {
		return nil, &ContentError{Op: "list_categories", Err: err}
	}
	return DistinctCategories(items), nil
}

func (s *service) ListTags(ctx context.Context) ([]string, error) {
	items, err := s.repository.All(ctx)
	if err != nil {
		return nil, &ContentError{Op: "list_tags", Err: err}
	}
	return DistinctTags(items), nil
}

// Engagement

func (s *service) LikeContent(ctx context.Context, id string) (int64, error) {
	return s.tracker.RecordLike(ctx, id)
}
