package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME,     default=accounts"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is a startup fault, never a per-request error.
func Load(ctx context.Context, logger zerolog.Logger) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return nil, err
	}
	return &cfg, nil
}
