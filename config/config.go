// Package config loads and validates route-table configuration for
// pathway hosts. Configuration is YAML with ${VAR} and ${VAR:-default}
// environment substitution; a Watcher reloads it on file changes.
package config

import (
	"fmt"
	"net/http"
	"strings"
)

// Config is the root configuration of a pathway host.
type Config struct {
	// Listen is the host:port the HTTP host binds to.
	Listen string `yaml:"listen"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`

	// Metrics configures the Prometheus exposition endpoint.
	Metrics MetricsConfig `yaml:"metrics"`

	// Timeout bounds each call; zero disables the timeout layer.
	Timeout Duration `yaml:"timeout"`

	// RateLimit configures the token-bucket layer; nil disables it.
	RateLimit *RateLimitConfig `yaml:"rateLimit"`

	// Routes are the static-response routes served by the host.
	Routes []Route `yaml:"routes"`

	// NotFound replaces the default 404 response when set.
	NotFound *StaticResponse `yaml:"notFound"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures metrics exposition.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// RateLimitConfig configures the rate-limit layer.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// Route binds one (method, pattern) pair to a static response.
type Route struct {
	Method   string         `yaml:"method"`
	Pattern  string         `yaml:"pattern"`
	Response StaticResponse `yaml:"response"`
}

// StaticResponse describes a response served verbatim.
type StaticResponse struct {
	Status  int               `yaml:"status"`
	Body    string            `yaml:"body"`
	Headers map[string]string `yaml:"headers"`
}

// allowedMethods are the methods a route may register.
var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	for i := range c.Routes {
		c.Routes[i].Method = strings.ToUpper(c.Routes[i].Method)
		if c.Routes[i].Response.Status == 0 {
			c.Routes[i].Response.Status = http.StatusOK
		}
	}
	if c.NotFound != nil && c.NotFound.Status == 0 {
		c.NotFound.Status = http.StatusNotFound
	}
}

// Validate checks the configuration. Route patterns are only checked for
// basic shape here; full pattern validation happens at router
// registration.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return fmt.Errorf("routes: at least one route is required")
	}

	for i, route := range c.Routes {
		if _, ok := allowedMethods[route.Method]; !ok {
			return fmt.Errorf("routes[%d].method: unsupported method %q", i, route.Method)
		}
		if route.Pattern == "" || !strings.HasPrefix(route.Pattern, "/") {
			return fmt.Errorf("routes[%d].pattern: must begin with '/'", i)
		}
		if err := validateStatus(route.Response.Status); err != nil {
			return fmt.Errorf("routes[%d].response.status: %w", i, err)
		}
	}

	if c.NotFound != nil {
		if err := validateStatus(c.NotFound.Status); err != nil {
			return fmt.Errorf("notFound.status: %w", err)
		}
	}

	if c.RateLimit != nil {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rateLimit.requestsPerSecond: must be positive")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rateLimit.burst: must be positive")
		}
	}

	return nil
}

// validateStatus checks a configured HTTP status code.
func validateStatus(status int) error {
	if status < 100 || status > 599 {
		return fmt.Errorf("status %d out of range", status)
	}
	return nil
}
