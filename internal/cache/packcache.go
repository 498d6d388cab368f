package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/domain"
)

const (
	packKeyAll    = "packs:all"
	packKeyActive = "packs:active"
	packTTL       = 5 * time.Minute
)

// PackCache is a read-through cache for the pack catalog. The catalog only
// changes through admin retirement, so short-lived staleness is fine. A nil
// *PackCache is a valid no-op cache.
type PackCache struct {
	client *redis.Client
}

func New(addr string) *PackCache {
	if addr == "" {
		return nil
	}
	return &PackCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *PackCache) Get(ctx context.Context, onlyActive bool) ([]domain.Pack, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key(onlyActive)).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("pack cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var packs []domain.Pack
	if err := json.Unmarshal(data, &packs); err != nil {
		zap.L().Warn("pack cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return packs, true
}

func (c *PackCache) Set(ctx context.Context, onlyActive bool, packs []domain.Pack) {
	if c == nil {
		return
	}
	data, err := json.Marshal(packs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(onlyActive), data, packTTL).Err(); err != nil {
		zap.L().Warn("pack cache write failed", zap.Error(err))
	}
}

func key(onlyActive bool) string {
	if onlyActive {
		return packKeyActive
	}
	return packKeyAll
}
