package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SampleContent returns the articles a fresh catalog starts with. Ids are
// assigned on insert, so seeding an empty repository yields ids "1" to "4".
func SampleContent() []*ContentItem {
	return []*ContentItem{
		{
			Title:     "Getting Started Guide",
			Body:      "This is a comprehensive guide to get you started with our platform.",
			AuthorID:  "1",
			CreatedAt: "2025-01-01T00:00:00",
			Category:  "Guides",
			Tags:      []string{"beginner", "setup"},
			Status:    DefaultStatus,
			Featured:  true,
		},
		{
			Title:     "Advanced Techniques",
			Body:      "Learn advanced techniques to maximize your productivity.",
			AuthorID:  "2",
			CreatedAt: "2025-01-02T00:00:00",
			Category:  "Tutorials",
			Tags:      []string{"advanced", "productivity"},
			Status:    DefaultStatus,
			Featured:  true,
		},
		{
			Title:     "Troubleshooting",
			Body:      "Common issues and how to solve them quickly.",
			AuthorID:  "1",
			CreatedAt: "2025-01-03T00:00:00",
			Category:  "Guides",
			Tags:      []string{"support", "faq"},
			Status:    DefaultStatus,
			Featured:  false,
		},
		{
			Title:     "API Documentation",
			Body:      "Complete API reference with examples.",
			AuthorID:  "3",
			CreatedAt: "2025-01-04T00:00:00",
			Category:  "Reference",
			Tags:      []string{"api", "reference"},
			Status:    "draft",
			Featured:  false,
		},
	}
}

// seedFile is the on-disk layout of a YAML seed file.
type seedFile struct {
	Items []seedItem `yaml:"items"`
}

// Required fields are pointers so that an absent key can be told apart from
// an empty value.
type seedItem struct {
	Title     *string  `yaml:"title"`
	Body      *string  `yaml:"body"`
	AuthorID  *string  `yaml:"author_id"`
	CreatedAt string   `yaml:"created_at"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	Status    string   `yaml:"status"`
	Featured  bool     `yaml:"featured"`
	Views     int64    `yaml:"views"`
	Likes     int64    `yaml:"likes"`
}

// ParseSeed decodes YAML seed data. Items without a title, body or author_id
// key are rejected, though empty values are accepted; an absent status
// becomes DefaultStatus.
func ParseSeed(data []byte) ([]*ContentItem, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	items := make([]*ContentItem, 0, len(f.Items))
	for i, s := range f.Items {
		if s.Title == nil || s.Body == nil || s.AuthorID == nil {
			return nil, fmt.Errorf("seed item %d: title, body and author_id are required: %w", i, ErrInvalidDraft)
		}
		if s.Views < 0 || s.Likes < 0 {
			return nil, fmt.Errorf("seed item %d: counters must not be negative: %w", i, ErrInvalidDraft)
		}
		status := s.Status
		if status == "" {
			status = DefaultStatus
		}
		items = append(items, &ContentItem{
			Title:     *s.Title,
			Body:      *s.Body,
			AuthorID:  *s.AuthorID,
			CreatedAt: s.CreatedAt,
			Category:  s.Category,
			Tags:      cloneTags(s.Tags),
			Status:    status,
			Featured:  s.Featured,
			Views:     s.Views,
			Likes:     s.Likes,
		})
	}
	return items, nil
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) ([]*ContentItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// Seed inserts items into repo in order.
func Seed(ctx context.Context, repo Repository, items []*ContentItem) error {
	for _, item := range items {
		if _, err := repo.Insert(ctx, item); err != nil {
			return fmt.Errorf("seed %q: %w", item.Title, err)
		}
	}
	return nil
}
