// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"BRAND_DB_PATH" envDefault:"./data/brandsite.db"`
	SessionSecret string `env:"BRAND_SESSION_SECRET,required"`
	ServerHost    string `env:"BRAND_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"BRAND_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"BRAND_ENV" envDefault:"development"`
	LogLevel      string `env:"BRAND_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"BRAND_UPLOADS_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"BRAND_PUBLIC_BASE_URL"` // Optional absolute base for upload URLs

	// Cache configuration
	RedisURL     string `env:"BRAND_REDIS_URL"`                          // Optional Redis URL for the content cache
	CachePrefix  string `env:"BRAND_CACHE_PREFIX" envDefault:"brand:"`   // Redis key prefix
	CacheTTL     int    `env:"BRAND_CACHE_TTL" envDefault:"300"`         // Content cache TTL in seconds
	CacheMaxSize int    `env:"BRAND_CACHE_MAX_SIZE" envDefault:"1000"`   // Max memory cache entries

	// Seeding configuration
	DoSeed        bool   `env:"BRAND_DO_SEED" envDefault:"false"` // Seed default admin user and site content
	AdminEmail    string `env:"BRAND_ADMIN_EMAIL" envDefault:"admin@localhost"`
	AdminPassword string `env:"BRAND_ADMIN_PASSWORD"` // Required when seeding with no existing users
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("BRAND_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
