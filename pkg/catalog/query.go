package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Query selects and orders items. Zero-valued fields are unset; Featured is a
// pointer so that "unset" and "false" can be told apart.
type Query struct {
	Search   string
	Category string
	Tag      string
	Featured *bool
	Status   string
	// SortBy names the sort field; a leading "-" sorts descending.
	SortBy string
}

// Matches reports whether item satisfies every filter in q.
func (q Query) Matches(item *ContentItem) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Body), needle) {
			return false
		}
	}
	if q.Category != "" && item.Category != q.Category {
		return false
	}
	if q.Tag != "" && !item.HasTag(q.Tag) {
		return false
	}
	if q.Featured != nil && item.Featured != *q.Featured {
		return false
	}
	if q.Status != "" && item.Status != q.Status {
		return false
	}
	return true
}

// Evaluate filters items with q and, when q.SortBy is set, sorts the result.
// The input slice is not modified.
func Evaluate(items []*ContentItem, q Query) ([]*ContentItem, error) {
	var cmp compareFunc
	var desc bool
	if q.SortBy != "" {
		var err error
		cmp, desc, err = resolveSortKey(q.SortBy)
		if err != nil {
			return nil, err
		}
	}

	result := make([]*ContentItem, 0, len(items))
	for _, item := range items {
		if q.Matches(item) {
			result = append(result, item)
		}
	}

	if cmp == nil {
		return result, nil
	}
	if err := sortItems(result, q.SortBy, cmp, desc); err != nil {
		return nil, err
	}
	return result, nil
}

// compareFunc returns -1, 0 or 1. It fails when either item has no value for
// the field.
type compareFunc func(a, b *ContentItem) (int, error)

// sortAccessors maps every sortable field name to its comparison.
var sortAccessors = map[string]compareFunc{
	"id":         compareID,
	"title":      stringField(func(c *ContentItem) string { return c.Title }),
	"body":       stringField(func(c *ContentItem) string { return c.Body }),
	"author_id":  stringField(func(c *ContentItem) string { return c.AuthorID }),
	"created_at": stringField(func(c *ContentItem) string { return c.CreatedAt }),
	"status":     stringField(func(c *ContentItem) string { return c.Status }),
	"category":   compareCategory,
	"featured":   compareFeatured,
	"views":      intField(func(c *ContentItem) int64 { return c.Views }),
	"likes":      intField(func(c *ContentItem) int64 { return c.Likes }),
}

// SortKeys returns the accepted sort field names in alphabetical order.
func SortKeys() []string {
	keys := make([]string, 0, len(sortAccessors))
	for k := range sortAccessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func resolveSortKey(raw string) (compareFunc, bool, error) {
	name, desc := strings.CutPrefix(raw, "-")
	if name == "" {
		return nil, false, &SortKeyError{Key: raw, Reason: "empty field name"}
	}
	cmp, ok := sortAccessors[name]
	if !ok {
		return nil, false, &SortKeyError{Key: raw, Reason: "unknown or unsortable field"}
	}
	return cmp, desc, nil
}

func sortItems(items []*ContentItem, key string, cmp compareFunc, desc bool) error {
	// Every item is checked up front so a missing value fails even when the
	// sort would never compare that particular item.
	for i := 1; i < len(items); i++ {
		if _, err := cmp(items[i-1], items[i]); err != nil {
			return &SortKeyError{Key: key, Reason: err.Error()}
		}
	}
	if len(items) == 1 {
		if _, err := cmp(items[0], items[0]); err != nil {
			return &SortKeyError{Key: key, Reason: err.Error()}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		c, _ := cmp(items[i], items[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return nil
}

type missingValueError struct {
	id string
}

func (e missingValueError) Error() string {
	return "item " + e.id + " has no value for this field"
}

func stringField(get func(*ContentItem) string) compareFunc {
	return func(a, b *ContentItem) (int, error) {
		return strings.Compare(get(a), get(b)), nil
	}
}

func intField(get func(*ContentItem) int64) compareFunc {
	return func(a, b *ContentItem) (int, error) {
		return compareInt(get(a), get(b)), nil
	}
}

func compareInt(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareCategory(a, b *ContentItem) (int, error) {
	if !a.HasCategory() {
		return 0, missingValueError{id: a.ID}
	}
	if !b.HasCategory() {
		return 0, missingValueError{id: b.ID}
	}
	return strings.Compare(a.Category, b.Category), nil
}

func compareFeatured(a, b *ContentItem) (int, error) {
	switch {
	case a.Featured == b.Featured:
		return 0, nil
	case !a.Featured:
		return -1, nil
	}
	return 1, nil
}

// compareID orders ids numerically; they are decimal counters.
func compareID(a, b *ContentItem) (int, error) {
	x, err := strconv.ParseInt(a.ID, 10, 64)
	if err != nil {
		return 0, missingValueError{id: a.ID}
	}
	y, err := strconv.ParseInt(b.ID, 10, 64)
	if err != nil {
		return 0, missingValueError{id: b.ID}
	}
	return compareInt(x, y), nil
}

// DistinctCategories returns every category present in items, once each, in
// first-seen order. Items without a category are skipped.
func DistinctCategories(items []*ContentItem) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		if !item.HasCategory() {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

// DistinctTags returns the union of all tags in items in first-seen order.
func DistinctTags(items []*ContentItem) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
