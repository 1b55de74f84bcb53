package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors ServerConfig with environment bindings. Defaults match
// defaults() so that an empty environment changes nothing.
//
//	PORT                      - Server port (default: "8080")
//	ENVIRONMENT               - development, production or testing
//	CATALOG_SEED_SAMPLE_DATA  - Seed the built-in sample articles (default: true)
//	CATALOG_SEED_FILE         - Optional YAML seed file
//	CATALOG_EVENT_LOGGING     - Log catalog events (default: true)
//	CATALOG_REQUEST_TIMEOUT   - Per-request timeout, e.g. "30s" (default: 60s)
//	CATALOG_MAX_BODY_BYTES    - Request body limit in bytes (default: 1 MiB)
//	CATALOG_CORS_ORIGINS      - Comma-separated allowed origins (default: "*");
//	                            set to an empty value to disable CORS
type envConfig struct {
	Port               string        `env:"PORT" env-default:"8080"`
	Environment        string        `env:"ENVIRONMENT" env-default:"development"`
	SeedSampleData     bool          `env:"CATALOG_SEED_SAMPLE_DATA" env-default:"true"`
	SeedFile           string        `env:"CATALOG_SEED_FILE"`
	EnableEventLogging bool          `env:"CATALOG_EVENT_LOGGING" env-default:"true"`
	RequestTimeout     time.Duration `env:"CATALOG_REQUEST_TIMEOUT" env-default:"60s"`
	MaxBodyBytes       int64         `env:"CATALOG_MAX_BODY_BYTES" env-default:"1048576"`
	CORSOrigins        []string      `env:"CATALOG_CORS_ORIGINS" env-default:"*" env-separator:","`
}

// WithEnv applies environment variable overrides. Options applied after it
// take precedence.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		c.Port = env.Port
		c.Environment = env.Environment
		c.SeedSampleData = env.SeedSampleData
		c.SeedFile = env.SeedFile
		c.EnableEventLogging = env.EnableEventLogging
		c.RequestTimeout = env.RequestTimeout
		c.MaxBodyBytes = env.MaxBodyBytes
		c.CORSOrigins = cleanOrigins(env.CORSOrigins)
		return nil
	}
}

func cleanOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
