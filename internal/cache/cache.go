// Package cache keeps resolved repost chains in Redis. Chains are safe
// to cache because lynt records never change after creation; only view
// counters move, and those are not part of the cached payload's
// correctness contract.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"local.dev/lyntr-backend/internal/models"
)

const chainTTL = 5 * time.Minute

type ChainCache struct {
	rdb *redis.Client
}

func New(addr, password string) (*ChainCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &ChainCache{rdb: rdb}, nil
}

// key is viewer-scoped because likedByMe differs per viewer.
func chainKey(viewerID, parentID string) string {
	return fmt.Sprintf("chain:%s:%s", viewerID, parentID)
}

func (c *ChainCache) GetChain(ctx context.Context, viewerID, parentID string) ([]models.LyntView, bool) {
	raw, err := c.rdb.Get(ctx, chainKey(viewerID, parentID)).Bytes()
	if err != nil {
		return nil, false
	}
	var views []models.LyntView
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, false
	}
	return views, true
}

func (c *ChainCache) SetChain(ctx context.Context, viewerID, parentID string, views []models.LyntView) error {
	raw, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, chainKey(viewerID, parentID), raw, chainTTL).Err()
}

func (c *ChainCache) Close() error {
	return c.rdb.Close()
}
