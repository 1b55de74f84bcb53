package config

import (
	"errors"
	"time"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return errors.New("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the runtime environment
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return errors.New("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithSampleData toggles seeding of the built-in sample articles
func WithSampleData(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.SeedSampleData = enabled
		return nil
	}
}

// WithSeedFile loads additional articles from a YAML file at startup
func WithSeedFile(path string) Option {
	return func(c *ServerConfig) error {
		c.SeedFile = path
		return nil
	}
}

// WithEventLogging enables or disables event logging
func WithEventLogging(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableEventLogging = enabled
		return nil
	}
}

// WithRequestTimeout bounds the time spent on one request; zero disables it
func WithRequestTimeout(d time.Duration) Option {
	return func(c *ServerConfig) error {
		c.RequestTimeout = d
		return nil
	}
}

// WithMaxBodyBytes limits request body size; zero disables the limit
func WithMaxBodyBytes(n int64) Option {
	return func(c *ServerConfig) error {
		c.MaxBodyBytes = n
		return nil
	}
}

// WithCORSOrigins sets the origins allowed cross-origin access; "*" allows
// any origin and no origins disables CORS handling
func WithCORSOrigins(origins ...string) Option {
	return func(c *ServerConfig) error {
		c.CORSOrigins = cleanOrigins(origins)
		return nil
	}
}
