// Package redis caches computed game statistics in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/gametime-api/internal/config"
	"github.com/heartmarshall/gametime-api/internal/domain"
)

const (
	keyPrefix     = "gametime:stats:"
	versionPrefix = "gametime:statsver:"
)

// NewClient connects to Redis and pings it so a bad address fails at startup.
func NewClient(ctx context.Context, cfg config.CacheConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// StatsCache stores GameStats as JSON under the normalized game title.
// Entries expire after ttl. Each title also has a version counter that
// Delete bumps, and Set only writes while the counter still holds the
// version the caller read before computing the stats.
type StatsCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStatsCache creates a cache over an existing client.
func NewStatsCache(client *goredis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats for gameTitle. A miss is (nil, false, nil).
func (c *StatsCache) Get(ctx context.Context, gameTitle string) (*domain.GameStats, bool, error) {
	raw, err := c.client.Get(ctx, key(gameTitle)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached stats: %w", err)
	}

	var entry cachedStats
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("decode cached stats: %w", err)
	}
	stats := entry.toDomain()
	return &stats, true, nil
}

// Version returns the current invalidation counter of gameTitle. A title
// that was never invalidated is at version 0.
func (c *StatsCache) Version(ctx context.Context, gameTitle string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(gameTitle)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get stats version: %w", err)
	}
	return v, nil
}

// Set stores stats under its game title if the title is still at version.
// A write that lost a race with Delete is skipped without error.
func (c *StatsCache) Set(ctx context.Context, stats *domain.GameStats, version int64) error {
	raw, err := json.Marshal(fromDomain(*stats))
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	vk := versionKey(stats.GameTitle)
	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, vk).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key(stats.GameTitle), raw, c.ttl)
			return nil
		})
		return err
	}, vk)
	switch {
	case err == nil, errors.Is(err, errStaleVersion), errors.Is(err, goredis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("set cached stats: %w", err)
	}
}

// Delete drops the cached stats of gameTitle and bumps its version so an
// in-flight Set computed before the change is discarded.
func (c *StatsCache) Delete(ctx context.Context, gameTitle string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(gameTitle))
		pipe.Del(ctx, key(gameTitle))
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("delete cached stats: %w", err)
	}
	return nil
}

var errStaleVersion = errors.New("stats version changed")

func key(gameTitle string) string {
	return keyPrefix + gameTitle
}

func versionKey(gameTitle string) string {
	return versionPrefix + gameTitle
}

// ---------------------------------------------------------------------------
// Wire format
// ---------------------------------------------------------------------------

type cachedHours struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type cachedStats struct {
	GameTitle        string                 `json:"gameTitle"`
	TotalSubmissions int                    `json:"totalSubmissions"`
	Overall          cachedHours            `json:"overall"`
	ByCompletionType map[string]cachedHours `json:"byCompletionType"`
	ByPlatform       map[string]cachedHours `json:"byPlatform"`
}

func fromDomain(s domain.GameStats) cachedStats {
	return cachedStats{
		GameTitle:        s.GameTitle,
		TotalSubmissions: s.TotalSubmissions,
		Overall:          cachedHours(s.Overall),
		ByCompletionType: fromBuckets(s.ByCompletionType),
		ByPlatform:       fromBuckets(s.ByPlatform),
	}
}

func (c cachedStats) toDomain() domain.GameStats {
	return domain.GameStats{
		GameTitle:        c.GameTitle,
		TotalSubmissions: c.TotalSubmissions,
		Overall:          domain.HoursStats(c.Overall),
		ByCompletionType: toBuckets(c.ByCompletionType),
		ByPlatform:       toBuckets(c.ByPlatform),
	}
}

func fromBuckets(in map[string]domain.HoursStats) map[string]cachedHours {
	out := make(map[string]cachedHours, len(in))
	for k, v := range in {
		out[k] = cachedHours(v)
	}
	return out
}

func toBuckets(in map[string]cachedHours) map[string]domain.HoursStats {
	out := make(map[string]domain.HoursStats, len(in))
	for k, v := range in {
		out[k] = domain.HoursStats(v)
	}
	return out
}
