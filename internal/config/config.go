package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"blog-service/internal/infrastructure"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DatabaseDriver string
	DatabaseURL    string

	SecretKey      string
	SecretKeyIsRaw bool
	TokenTTL       time.Duration
	PasswordCost   int

	Redis        infrastructure.RedisConfig
	CacheTTL     time.Duration
	CacheTimeout time.Duration

	NatsURL           string
	NotificationTopic string
	BusTimeout        time.Duration

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	LogLevel  string
	LogFormat string
}

// Load reads .env when present and then the process environment. A missing
// .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: infrastructure.GetEnvAsString("HTTP_ADDR", ":8080"),

		DatabaseDriver: infrastructure.GetEnvAsString("DATABASE_DRIVER", "postgres"),
		DatabaseURL: infrastructure.GetEnvAsString("DATABASE_URL",
			"host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable"),

		SecretKey:    infrastructure.GetEnvAsString("SECRET_KEY", ""),
		TokenTTL:     time.Duration(infrastructure.GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		PasswordCost: infrastructure.ConfiguredPasswordCost(
			infrastructure.GetEnvAsInt("PASSWORD_COST", infrastructure.PasswordCost)),

		Redis: infrastructure.RedisConfig{
			URL:      infrastructure.GetEnvAsString("REDIS_URL", ""),
			Host:     infrastructure.GetEnvAsString("REDIS_HOST", "localhost"),
			Port:     infrastructure.GetEnvAsString("REDIS_PORT", "6379"),
			Password: infrastructure.GetEnvAsString("REDIS_PASSWORD", ""),
			DB:       infrastructure.GetEnvAsInt("REDIS_DB", 0),
		},
		CacheTTL:     infrastructure.GetEnvAsDuration("CACHE_TTL", infrastructure.DefaultCacheTTL),
		CacheTimeout: infrastructure.GetEnvAsDuration("CACHE_TIMEOUT", 500*time.Millisecond),

		NatsURL:           infrastructure.GetEnvAsString("NATS_URL", "nats://localhost:4222"),
		NotificationTopic: infrastructure.GetEnvAsString("NOTIFICATION_TOPIC", "notifications"),
		BusTimeout:        infrastructure.GetEnvAsDuration("BUS_TIMEOUT", 2*time.Second),

		AdminUsername: infrastructure.GetEnvAsString("ADMIN_USERNAME", ""),
		AdminEmail:    infrastructure.GetEnvAsString("ADMIN_EMAIL", ""),
		AdminPassword: infrastructure.GetEnvAsString("ADMIN_PASSWORD", ""),

		LogLevel:  infrastructure.GetEnvAsString("LOG_LEVEL", "info"),
		LogFormat: infrastructure.GetEnvAsString("LOG_FORMAT", "json"),
	}

	if cfg.SecretKey == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.SecretKey = secret
		cfg.SecretKeyIsRaw = true
	}
	return cfg, nil
}

// HasAdmin reports whether a bootstrap admin account is configured.
func (c *Config) HasAdmin() bool {
	return c.AdminUsername != "" && c.AdminEmail != "" && c.AdminPassword != ""
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
