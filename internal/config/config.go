// Package config loads the service configuration from KIOSK_-prefixed
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string `envconfig:"ADDR" default:":5001"`

	// DataDir holds the JSON document files (cardapio, usuarios, pedidos).
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// UploadsDir holds product images, served under /uploads/.
	UploadsDir string `envconfig:"UPLOADS_DIR" default:"./uploads"`

	// OrderLogPath is the SQLite order event log. Empty disables auditing.
	OrderLogPath string `envconfig:"ORDER_LOG_PATH" default:"./data/orderlog.db"`

	// RedisAddr enables the suggestion cache when set (host:port).
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	SuggestionTTL time.Duration `envconfig:"SUGGESTION_TTL" default:"5m"`

	// GeminiAPIKey authenticates against the generative-language API.
	// Without it the suggestion route degrades to collaborator errors.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`

	// TracingEnabled turns on the OTLP span exporter.
	TracingEnabled bool `envconfig:"TRACING_ENABLED" default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("KIOSK", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: process environment: %w", err)
	}
	return cfg, nil
}
