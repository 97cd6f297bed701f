package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Session  SessionConfig
	Admin    AdminConfig
}

type PostgresConfig struct {
	DSN          string `env:"DATABASE_URL, default=postgres://localhost:5432/dbudget?sslmode=disable"`
	MaxOpenConns int    `env:"DATABASE_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// TTL bounds both the Redis entry and the cookie Max-Age.
	TTL time.Duration `env:"SESSION_TTL, default=24h"`
	// CookieSecure should only be disabled for local development over
	// plain HTTP.
	CookieSecure bool `env:"COOKIE_SECURE, default=true"`
}

type AdminConfig struct {
	// Username and Password seed the bootstrap admin account on startup.
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
