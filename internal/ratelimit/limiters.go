package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "lms:ratelimit:"
	redisPingWait  = 3 * time.Second
)

// Limiters are the budgets applied to the public auth endpoints. A nil
// limiter means the endpoint is not limited.
type Limiters struct {
	Login  Limiter
	Forgot Limiter

	client *redis.Client
}

// NewLimiters builds the login and forgot budgets from cfg. The counters live
// in Redis when an address is configured and in process memory otherwise. An
// unreachable Redis is only reported: the middleware lets requests through
// while the counter backend fails.
func NewLimiters(ctx context.Context, cfg config.RateLimit, log *logger.Logger) *Limiters {
	limiters := &Limiters{}

	if cfg.RedisAddress == "" {
		limiters.Login = memoryOrNil(cfg.LoginLimit, cfg.Window)
		limiters.Forgot = memoryOrNil(cfg.ForgotLimit, cfg.Window)
		log.Info().Str("backend", "memory").Msg("rate limiters created")
		return limiters
	}

	limiters.client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingWait)
	defer cancel()
	if err := limiters.client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("func", "NewLimiters").Str("address", cfg.RedisAddress).Msg("redis is not reachable yet")
	}

	if cfg.LoginLimit > 0 {
		limiters.Login = NewRedisLimiter(limiters.client, redisKeyPrefix, cfg.LoginLimit, cfg.Window)
	}
	if cfg.ForgotLimit > 0 {
		limiters.Forgot = NewRedisLimiter(limiters.client, redisKeyPrefix, cfg.ForgotLimit, cfg.Window)
	}
	log.Info().Str("backend", "redis").Msg("rate limiters created")

	return limiters
}

func memoryOrNil(limit int, period time.Duration) Limiter {
	if limit <= 0 {
		return nil
	}
	return NewMemoryLimiter(limit, period)
}

// Close releases the Redis connection pool, if any.
func (l *Limiters) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}
