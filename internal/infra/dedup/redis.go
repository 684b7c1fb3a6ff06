package dedup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}

// OnceGuard claims dedup keys with SET NX so that a notification for a
// given booking transition is sent by exactly one delivery of the event.
// Keys expire after the TTL; by then the transition is long terminal.
type OnceGuard struct {
	client *redis.Client
}

func NewOnceGuard(client *redis.Client) *OnceGuard {
	return &OnceGuard{client: client}
}

func (g *OnceGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := g.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "dedup acquire failed")
	}
	return acquired, nil
}
