package memory

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/tendant/simple-catalog/pkg/catalog"
)

// record is the stored form of a content item. Counters are atomic so that
// increments only need the read lock.
type record struct {
	item  catalog.ContentItem // Views and Likes are unused here
	views atomic.Int64
	likes atomic.Int64
}

func (rec *record) snapshot() *catalog.ContentItem {
	out := rec.item.Clone()
	out.Views = rec.views.Load()
	out.Likes = rec.likes.Load()
	return out
}

// Repository implements catalog.Repository using in-memory storage
type Repository struct {
	mu      sync.RWMutex
	records []*record          // insertion order
	byID    map[string]*record // id -> record
	lastID  uint64             // never decreases
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		byID: make(map[string]*record),
	}
}

var _ catalog.Repository = (*Repository)(nil)

func (r *Repository) Insert(ctx context.Context, item *catalog.ContentItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strconv.FormatUint(r.lastID+1, 10)
	if _, exists := r.byID[id]; exists {
		return "", catalog.ErrDuplicateID
	}
	r.lastID++

	// Create a copy to avoid external modifications
	rec := &record{item: *item.Clone()}
	rec.item.ID = id
	rec.views.Store(item.Views)
	rec.likes.Store(item.Likes)

	r.records = append(r.records, rec)
	r.byID[id] = rec

	return id, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*catalog.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.byID[id]
	if !exists {
		return nil, catalog.ErrContentNotFound
	}
	return rec.snapshot(), nil
}

func (r *Repository) Replace(ctx context.Context, id string, item *catalog.ContentItem) (*catalog.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.byID[id]
	if !exists {
		return nil, catalog.ErrContentNotFound
	}

	replacement := *item.Clone()
	replacement.ID = id
	rec.item = replacement

	return rec.snapshot(), nil
}

func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.byID[id]
	if !exists {
		return catalog.ErrContentNotFound
	}

	delete(r.byID, id)
	for i, candidate := range r.records {
		if candidate == rec {
			r.records = append(r.records[:i], r.records[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository) All(ctx context.Context) ([]*catalog.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.ContentItem, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec.snapshot())
	}
	return result, nil
}

// Counter operations

// View holds the read lock across the increment and the copy, so a
// concurrent Replace lands either wholly before or wholly after it.
func (r *Repository) View(ctx context.Context, id string) (*catalog.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.byID[id]
	if !exists {
		return nil, catalog.ErrContentNotFound
	}
	views := rec.views.Add(1)
	out := rec.snapshot()
	out.Views = views
	return out, nil
}

func (r *Repository) IncrementLikes(ctx context.Context, id string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.byID[id]
	if !exists {
		return 0, catalog.ErrContentNotFound
	}
	return rec.likes.Add(1), nil
}

// Len returns the number of live items.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
