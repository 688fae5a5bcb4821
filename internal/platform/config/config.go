package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the overlay daemon reads from the
// environment: the ops HTTP listener, logging, findings ingestion, the
// frame cadence, and tracing.
type Config struct {
	Addr      string `env:"SPECTO_ADDR"       envDefault:":8080"`
	LogLevel  string `env:"SPECTO_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SPECTO_LOG_FORMAT" envDefault:"text"`

	// FindingsPath points at a causal-findings JSON file to replay onto
	// the overlay at startup. Empty disables ingestion.
	FindingsPath  string `env:"SPECTO_FINDINGS_PATH"`
	FindingsWatch bool   `env:"SPECTO_FINDINGS_WATCH" envDefault:"false"`

	// FrameInterval is the headless frame cadence driving entry
	// animations, roughly 30fps by default.
	FrameInterval time.Duration `env:"SPECTO_FRAME_INTERVAL" envDefault:"33ms"`

	Locale string `env:"SPECTO_LOCALE" envDefault:"en"`

	// OTLPEndpoint enables tracing when set, e.g. "http://localhost:4318".
	OTLPEndpoint string `env:"SPECTO_OTLP_ENDPOINT"`

	ShutdownTimeout time.Duration `env:"SPECTO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
