package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tendant/simple-catalog/pkg/catalog"
	"github.com/tendant/simple-catalog/pkg/catalog/api"
	"github.com/tendant/simple-catalog/pkg/catalog/repo/memory"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadServerConfig loads configuration from the process environment.
func LoadServerConfig() (*ServerConfig, error) {
	return Load(WithEnv())
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Environment:        "development",
		SeedSampleData:     true,
		EnableEventLogging: true,
		RequestTimeout:     60 * time.Second,
		MaxBodyBytes:       1 << 20,
		CORSOrigins:        []string{"*"},
	}
}

// ServerConfig represents server configuration for the catalog service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Seeding; the store lives only as long as the process
	SeedSampleData bool
	SeedFile       string // optional YAML file, loaded after the sample data

	// Server options
	EnableEventLogging bool
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
	CORSOrigins        []string // empty disables CORS handling
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.Environment {
	case "development", "production", "testing":
	default:
		return fmt.Errorf("environment must be 'development', 'production' or 'testing', got %q", c.Environment)
	}

	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must not be negative")
	}
	if c.MaxBodyBytes < 0 {
		return errors.New("max_body_bytes must not be negative")
	}

	return nil
}

// BuildService creates a seeded Service instance from the server configuration
func (c *ServerConfig) BuildService(ctx context.Context) (catalog.Service, error) {
	repo, err := c.buildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	options := []catalog.Option{catalog.WithRepository(repo)}
	if c.EnableEventLogging {
		options = append(options, catalog.WithEventSink(catalog.NewLoggingEventSink(c.Logger())))
	}

	return catalog.New(options...)
}

func (c *ServerConfig) buildRepository(ctx context.Context) (*memory.Repository, error) {
	repo := memory.New()

	if c.SeedSampleData {
		if err := catalog.Seed(ctx, repo, catalog.SampleContent()); err != nil {
			return nil, err
		}
	}

	if c.SeedFile != "" {
		items, err := catalog.LoadSeedFile(c.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := catalog.Seed(ctx, repo, items); err != nil {
			return nil, err
		}
	}

	slog.Info("Catalog seeded", "items", repo.Len(), "sample_data", c.SeedSampleData, "seed_file", c.SeedFile)
	return repo, nil
}

// RouterOptions returns the HTTP router settings carried by the configuration.
func (c *ServerConfig) RouterOptions(logger *slog.Logger) api.RouterOptions {
	return api.RouterOptions{
		Logger:         logger,
		RequestTimeout: c.RequestTimeout,
		MaxBodyBytes:   c.MaxBodyBytes,
		CORSOrigins:    c.CORSOrigins,
	}
}

// Logger returns a structured logger suited to the environment: JSON in
// production, text otherwise.
func (c *ServerConfig) Logger() *slog.Logger {
	if c.Environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
