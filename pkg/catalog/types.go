package catalog

// DefaultStatus is applied when a draft does not carry a status.
const DefaultStatus = "published"

// ContentItem is one article in the catalog.
type ContentItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	AuthorID  string   `json:"author_id"`
	CreatedAt string   `json:"created_at"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags"`
	Status    string   `json:"status"`
	Featured  bool     `json:"featured"`
	Views     int64    `json:"views"`
	Likes     int64    `json:"likes"`
}

// HasCategory reports whether the item carries a category label.
func (c *ContentItem) HasCategory() bool {
	return c.Category != ""
}

// HasTag reports whether tag is one of the item's tags (exact match).
func (c *ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item.
func (c *ContentItem) Clone() *ContentItem {
	cp := *c
	cp.Tags = cloneTags(c.Tags)
	return &cp
}

// Draft is the client-supplied field set for create and update. It never
// carries server-owned fields (id, views, likes).
type Draft struct {
	Title     string
	Body      string
	AuthorID  string
	CreatedAt string
	Category  string
	Tags      []string
	Status    string
	Featured  bool
}

// apply copies the draft onto item, leaving id and counters untouched.
func (d Draft) apply(item *ContentItem) {
	item.Title = d.Title
	item.Body = d.Body
	item.AuthorID = d.AuthorID
	item.CreatedAt = d.CreatedAt
	item.Category = d.Category
	item.Tags = cloneTags(d.Tags)
	item.Status = d.Status
	if item.Status == "" {
		item.Status = DefaultStatus
	}
	item.Featured = d.Featured
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
