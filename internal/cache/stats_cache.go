package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookworm/internal/microservices/http-api/dto"

	"github.com/redis/go-redis/v9"
)

const adminStatsKeyPrefix = "stats:admin:"

// StatsCache keeps admin dashboard snapshots in Redis for a short TTL.
// A nil *StatsCache, or one without a client, behaves as an always-empty cache.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache connects to the Redis instance at redisURL (redis:// or rediss://).
func NewStatsCache(ctx context.Context, redisURL, password string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewStatsCacheWithClient(rdb, ttl), nil
}

func NewStatsCacheWithClient(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func adminStatsKey(authorEmail string) string {
	return adminStatsKeyPrefix + authorEmail
}

// Get returns nil, nil on a miss
func (c *StatsCache) Get(ctx context.Context, authorEmail string) (*dto.AdminStats, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, adminStatsKey(authorEmail)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats dto.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, authorEmail string, stats *dto.AdminStats) error {
	if c == nil || c.client == nil || stats == nil {
		return nil
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, adminStatsKey(authorEmail), raw, c.ttl).Err()
}

func (c *StatsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
