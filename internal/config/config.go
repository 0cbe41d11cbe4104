package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/termfolio.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// ContactEndpoint receives contact form submissions. Empty disables
	// forwarding; messages are still archived locally.
	ContactEndpoint string `env:"CONTACT_ENDPOINT" envDefault:"https://formspree.io/f/xdkdqpzv"`
	// SpotifyEndpoint serves recently played tracks. Empty disables the
	// spotify command.
	SpotifyEndpoint   string        `env:"SPOTIFY_ENDPOINT"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
	SessionIdleTTL    time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
