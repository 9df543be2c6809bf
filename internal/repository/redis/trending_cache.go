package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopreco/business/reco"

	"github.com/redis/go-redis/v9"
)

const (
	trendingKey = "reco:trending:products"
	trendingTTL = 5 * time.Minute
)

// TrendingCache keeps the ranked trending product ids hot so the general
// recommendation path rarely touches the catalog table for them.
type TrendingCache struct {
	client *redis.Client
}

var _ reco.TrendingCache = (*TrendingCache)(nil)

func NewTrendingCache(client *redis.Client) *TrendingCache {
	return &TrendingCache{
		client: client,
	}
}

// GetTrending returns the cached ranking, or nil on a miss.
func (c *TrendingCache) GetTrending(ctx context.Context, limit int) ([]uint64, error) {
	val, err := c.client.Get(ctx, trendingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trending products from Redis: %w", err)
	}

	var ids []uint64
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trending products: %w", err)
	}

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (c *TrendingCache) SetTrending(ctx context.Context, ids []uint64) error {
	jsonData, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal trending products: %w", err)
	}

	if err := c.client.Set(ctx, trendingKey, jsonData, trendingTTL).Err(); err != nil {
		return fmt.Errorf("failed to store trending products in Redis: %w", err)
	}

	return nil
}
