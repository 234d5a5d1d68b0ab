package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNoClient = errors.New("redis client not configured")

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping reports whether redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Strict returns a KV over the same connection that reports redis errors
// instead of hiding them. Use it where a lost write matters.
func (c *Client) Strict() KV {
	return strictClient{c: c}
}

type strictClient struct {
	c *Client
}

func (s strictClient) Get(ctx context.Context, key string) ([]byte, error) {
	if s.c == nil || s.c.client == nil {
		return nil, errNoClient
	}
	res, err := s.c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return res, err
}

func (s strictClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.c == nil || s.c.client == nil {
		return errNoClient
	}
	return s.c.client.Set(ctx, key, value, ttl).Err()
}

func (s strictClient) Delete(ctx context.Context, key string) error {
	if s.c == nil || s.c.client == nil {
		return errNoClient
	}
	return s.c.client.Del(ctx, key).Err()
}
