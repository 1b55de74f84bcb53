package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleContent(t *testing.T) {
	items := SampleContent()
	require.Len(t, items, 4)
	for _, item := range items {
		assert.Empty(t, item.ID)
		assert.Zero(t, item.Views)
		assert.Zero(t, item.Likes)
	}
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
items:
  - title: Release notes
    body: What changed this week.
    author_id: "9"
    created_at: "2025-05-01T00:00:00"
    category: News
    tags: [release, weekly]
    featured: true
    views: 12
    likes: 3
  - title: Untitled draft
    body: tbd
    author_id: "9"
    status: draft
`)

	items, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Release notes", items[0].Title)
	assert.Equal(t, []string{"release", "weekly"}, items[0].Tags)
	assert.Equal(t, DefaultStatus, items[0].Status)
	assert.True(t, items[0].Featured)
	assert.Equal(t, int64(12), items[0].Views)
	assert.Equal(t, int64(3), items[0].Likes)

	assert.Equal(t, "draft", items[1].Status)
	assert.False(t, items[1].HasCategory())
	assert.NotNil(t, items[1].Tags)
}

func TestParseSeed_EmptyValuesAccepted(t *testing.T) {
	items, err := ParseSeed([]byte("items:\n  - title: \"\"\n    body: \"\"\n    author_id: \"\"\n"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Title)
	assert.Empty(t, items[0].Body)
	assert.Empty(t, items[0].AuthorID)
	assert.Equal(t, DefaultStatus, items[0].Status)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed yaml", data: "items: [title"},
		{name: "missing title", data: "items:\n  - body: b\n    author_id: \"1\"\n"},
		{name: "missing body", data: "items:\n  - title: t\n    author_id: \"1\"\n"},
		{name: "missing author", data: "items:\n  - title: t\n    body: b\n"},
		{name: "negative views", data: "items:\n  - title: t\n    body: b\n    author_id: \"1\"\n    views: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - title: t\n    body: b\n    author_id: \"1\"\n"), 0o600))

	items, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
