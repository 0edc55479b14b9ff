package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DBUrl is the owner connection used for migrations only.
	DBUrl string `env:"DATABASE_URL"`
	// DBAppUserUrl connects as the row-security constrained role.
	DBAppUserUrl string `env:"DATABASE_APP_USER_URL,required,notEmpty"`
	AutoMigrate  bool   `env:"AUTO_MIGRATE" envDefault:"false"`

	SupabaseUrl       string `env:"SUPABASE_URL"`
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET"`

	// EncryptionKey protects recruiter LLM credentials at rest. Never log it.
	EncryptionKey string `env:"ENCRYPTION_KEY,required,notEmpty"`

	// Redis/Upstash Configuration
	UpstashRedisURL      string `env:"UPSTASH_REDIS_URL"`
	UpstashRedisPassword string `env:"UPSTASH_REDIS_PASSWORD"`

	// Comma-separated list of allowed origins
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

const minEncryptionKeyLength = 32

func LoadConfig() (*Config, error) {
	// .env is only present locally
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.SupabaseUrl = strings.TrimRight(cfg.SupabaseUrl, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.EncryptionKey) < minEncryptionKeyLength {
		return fmt.Errorf("ENCRYPTION_KEY must be at least %d characters", minEncryptionKeyLength)
	}
	if c.AutoMigrate && c.DBUrl == "" {
		return fmt.Errorf("DATABASE_URL is required when AUTO_MIGRATE is enabled")
	}
	if c.SupabaseJWTSecret == "" && c.SupabaseUrl == "" {
		return fmt.Errorf("either SUPABASE_JWT_SECRET or SUPABASE_URL must be set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// JWKSURL is empty when no Supabase project URL is configured.
func (c *Config) JWKSURL() string {
	if c.SupabaseUrl == "" {
		return ""
	}
	return c.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
}

func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimRight(strings.TrimSpace(origin), "/")
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
