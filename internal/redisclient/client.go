package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// GetCart retrieves the serialized cart payload. The second return value is
// false when no cart exists under the key.
func (c *Client) GetCart(ctx context.Context, cartID string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, cartKey(cartID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cart: %w", err)
	}
	return payload, true, nil
}

// SaveCart writes the serialized cart payload, refreshing its TTL.
// Last write wins.
func (c *Client) SaveCart(ctx context.Context, cartID string, payload []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, cartKey(cartID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// DeleteCart removes a cart entirely
func (c *Client) DeleteCart(ctx context.Context, cartID string) error {
	return c.rdb.Del(ctx, cartKey(cartID)).Err()
}
