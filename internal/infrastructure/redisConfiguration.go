package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis, preferring URL over the individual
// fields. It returns nil when Redis cannot be reached so the cache runs
// disabled instead of failing startup.
func NewRedisClient(cfg RedisConfig, logger zerolog.Logger) *redis.Client {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			logger.Warn().Err(err).Msg("invalid REDIS_URL, falling back to REDIS_HOST/REDIS_PORT")
		} else {
			opts = parsed
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", opts.Addr).Msg("redis unreachable, post cache disabled")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", opts.Addr).Msg("connected to redis")
	return client
}
