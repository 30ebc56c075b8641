package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const registeredEmailsKey = "account:emails"

// Client wraps the Redis connection.
type Client struct {
	rdb *goredis.Client
}

// NewClient connects to Redis, retrying up to attempts times.
func NewClient(ctx context.Context, addr string, attempts int, logger *slog.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			logger.Info("connected to redis", "addr", addr)
			return &Client{rdb: rdb}, nil
		}
		logger.Info("waiting for redis", "attempt", i+1, "of", attempts)
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("redis: failed to connect after %d attempts", attempts)
}

// MarkEmailRegistered records email in the registered set.
func (c *Client) MarkEmailRegistered(ctx context.Context, email string) error {
	return c.rdb.SAdd(ctx, registeredEmailsKey, email).Err()
}

// IsEmailRegistered reports whether email is in the registered set.
// A miss only means the email was never cached.
func (c *Client) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	return c.rdb.SIsMember(ctx, registeredEmailsKey, email).Result()
}

// Close tears down the Redis connection.
func (c *Client) Close() error { return c.rdb.Close() }
