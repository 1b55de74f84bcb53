package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-catalog/pkg/catalog"
)

var envKeys = []string{
	"PORT",
	"ENVIRONMENT",
	"CATALOG_SEED_SAMPLE_DATA",
	"CATALOG_SEED_FILE",
	"CATALOG_EVENT_LOGGING",
	"CATALOG_REQUEST_TIMEOUT",
	"CATALOG_MAX_BODY_BYTES",
	"CATALOG_CORS_ORIGINS",
}

// clearEnv unsets every variable WithEnv reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.SeedSampleData)
	assert.True(t, cfg.EnableEventLogging)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Options(t *testing.T) {
	cfg, err := Load(
		WithPort("9090"),
		WithEnvironment("testing"),
		WithSampleData(false),
		WithSeedFile("seed.yaml"),
		WithEventLogging(false),
		WithRequestTimeout(5*time.Second),
		WithMaxBodyBytes(512),
		WithCORSOrigins("http://localhost:3000", " "),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "testing", cfg.Environment)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.False(t, cfg.EnableEventLogging)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(512), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)

	opts := cfg.RouterOptions(nil)
	assert.Equal(t, cfg.CORSOrigins, opts.CORSOrigins)
	assert.Equal(t, cfg.MaxBodyBytes, opts.MaxBodyBytes)
	assert.Equal(t, cfg.RequestTimeout, opts.RequestTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "empty port", opts: []Option{WithPort("")}},
		{name: "unknown environment", opts: []Option{WithEnvironment("staging")}},
		{name: "negative timeout", opts: []Option{WithRequestTimeout(-time.Second)}},
		{name: "negative body limit", opts: []Option{WithMaxBodyBytes(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestWithEnv_EmptyEnvironmentKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(WithEnv())
	require.NoError(t, err)

	def := defaults()
	assert.Equal(t, &def, cfg)
}

func TestWithEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CATALOG_SEED_SAMPLE_DATA", "false")
	t.Setenv("CATALOG_SEED_FILE", "/etc/catalog/seed.yaml")
	t.Setenv("CATALOG_EVENT_LOGGING", "false")
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "15s")
	t.Setenv("CATALOG_MAX_BODY_BYTES", "2048")
	t.Setenv("CATALOG_CORS_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "/etc/catalog/seed.yaml", cfg.SeedFile)
	assert.False(t, cfg.EnableEventLogging)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins)
}

func TestWithEnv_EmptyCORSOriginsDisablesCORS(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_CORS_ORIGINS", "")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestWithEnv_LaterOptionsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	cfg, err := Load(WithEnv(), WithPort("7001"))
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Port)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "soon")

	_, err := Load(WithEnv())
	assert.Error(t, err)
}

func TestBuildService_SeedsSampleData(t *testing.T) {
	cfg, err := Load(WithEnvironment("testing"), WithEventLogging(false))
	require.NoError(t, err)

	svc, err := cfg.BuildService(context.Background())
	require.NoError(t, err)

	items, err := svc.ListContent(context.Background(), catalog.Query{})
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestBuildService_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := "items:\n  - title: Extra\n    body: From file\n    author_id: \"5\"\n    category: News\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg, err := Load(WithSampleData(false), WithSeedFile(path))
	require.NoError(t, err)

	svc, err := cfg.BuildService(context.Background())
	require.NoError(t, err)

	item, err := svc.GetContent(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Extra", item.Title)
	assert.Equal(t, "News", item.Category)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"News"}, categories)
}

func TestBuildService_MissingSeedFile(t *testing.T) {
	cfg, err := Load(WithSeedFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(t, err)

	_, err = cfg.BuildService(context.Background())
	assert.Error(t, err)
}
