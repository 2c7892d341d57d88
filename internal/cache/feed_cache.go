package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/linkup-app/backend/internal/models"
)

const feedKeyPrefix = "feed:user:"

// FeedCache defines the advisory cache of computed feeds, one entry per
// viewer, expiring after a fixed TTL. Its absence or staleness never changes
// behavior beyond recomputation.
type FeedCache interface {
	GetFeed(ctx context.Context, viewerID string) ([]models.Post, bool, error)
	SetFeed(ctx context.Context, viewerID string, posts []models.Post) error
	InvalidateFeed(ctx context.Context, viewerID string) error
	Close() error
}

// RedisFeedCache implements FeedCache backed by Redis.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFeedCache creates a new Redis-backed feed cache.
func NewRedisFeedCache(address, password string, db int, ttl time.Duration) (*RedisFeedCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisFeedCache{client: client, ttl: ttl}, nil
}

func feedKey(viewerID string) string {
	return feedKeyPrefix + viewerID
}

// encodeFeed serializes a feed as a JSON array. A nil feed is normalized to
// an empty slice so the cached value is always an array, never a bare object
// or null, and readers never have to branch on shape.
func encodeFeed(posts []models.Post) ([]byte, error) {
	if posts == nil {
		posts = []models.Post{}
	}
	return json.Marshal(posts)
}

// GetFeed returns the cached feed for a viewer.
// Returns (posts, true, nil) on hit, (nil, false, nil) on miss,
// (nil, false, err) on error.
func (c *RedisFeedCache) GetFeed(ctx context.Context, viewerID string) ([]models.Post, bool, error) {
	data, err := c.client.Get(ctx, feedKey(viewerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get feed: %w", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false, fmt.Errorf("decode cached feed: %w", err)
	}
	return posts, true, nil
}

// SetFeed stores the computed feed for a viewer with the configured TTL.
func (c *RedisFeedCache) SetFeed(ctx context.Context, viewerID string, posts []models.Post) error {
	data, err := encodeFeed(posts)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if err := c.client.Set(ctx, feedKey(viewerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set feed: %w", err)
	}
	return nil
}

// InvalidateFeed drops the cached feed for a viewer.
func (c *RedisFeedCache) InvalidateFeed(ctx context.Context, viewerID string) error {
	if err := c.client.Del(ctx, feedKey(viewerID)).Err(); err != nil {
		return fmt.Errorf("redis invalidate feed: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (c *RedisFeedCache) Close() error {
	return c.client.Close()
}

// Ensure interface is satisfied at compile time.
var _ FeedCache = (*RedisFeedCache)(nil)
