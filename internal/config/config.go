// Package config loads the application configuration from a yaml file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Everything the
// pipeline needs (source URL, fetch timeout, database path, top-N) is explicit
// configuration so tests and parallel runs can use isolated storage targets.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// A report request performs the full fetch-and-replace pipeline, so this
		// must exceed the source fetch timeout.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains the local SQLite settings
	Database struct {
		// Path is the SQLite database file. The user table inside it is
		// rebuilt on every pipeline run.
		Path string `env:"DATABASE_PATH" env-default:"userboard.db" yaml:"path"`
	} `yaml:"database"`

	// Source describes the upstream user API
	Source struct {
		// URL is the fixed endpoint returning the user list as a JSON array
		URL string `env:"SOURCE_URL" env-default:"https://jsonplaceholder.typicode.com/users" yaml:"url"`
		// FetchTimeout bounds the single fetch attempt; there are no retries
		FetchTimeout time.Duration `env:"SOURCE_FETCH_TIMEOUT" env-default:"20s" yaml:"fetchTimeout"`
	} `yaml:"source"`

	// Report contains presentation-facing knobs of the aggregate view
	Report struct {
		// TopN is how many records the longest-names ranking keeps
		TopN int `env:"REPORT_TOP_N" env-default:"10" yaml:"topN"`
		// RunHistoryLimit caps how many sync runs the runs endpoint returns
		RunHistoryLimit uint `env:"REPORT_RUN_HISTORY_LIMIT" env-default:"20" yaml:"runHistoryLimit"`
	} `yaml:"report"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
