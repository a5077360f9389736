package semantic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultCacheSize = 1000

	redisKeyPrefix = "ats:emb:"
	redisTTL       = 7 * 24 * time.Hour
)

// Cache keeps embeddings keyed by normalized text. The in-process LRU is
// always present; Redis is consulted on a miss when a client is configured.
type Cache struct {
	local  *lru.Cache[string, []float32]
	redis  *redis.Client
	logger *zap.Logger
}

// NewCache creates a cache holding at most size vectors in memory.
// A nil redis client disables the shared tier.
func NewCache(size int, rdb *redis.Client, logger *zap.Logger) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	local, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("create embedding lru: %w", err)
	}

	return &Cache{local: local, redis: rdb, logger: logger}, nil
}

// Get returns the cached vector for text under model.
func (c *Cache) Get(ctx context.Context, model, text string) ([]float32, bool) {
	if c == nil {
		return nil, false
	}

	key := normalize(text)
	if v, ok := c.local.Get(key); ok {
		return v, true
	}
	if c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, redisKey(model, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("embedding cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var v []float32
	if err := json.Unmarshal(raw, &v); err != nil {
		c.logger.Warn("embedding cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	c.local.Add(key, v)
	return v, true
}

// Add stores the vector in memory and, when configured, in Redis.
func (c *Cache) Add(ctx context.Context, model, text string, v []float32) {
	if c == nil {
		return
	}

	key := normalize(text)
	c.local.Add(key, v)
	if c.redis == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("encode embedding for cache", zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, redisKey(model, key), raw, redisTTL).Err(); err != nil {
		c.logger.Warn("embedding cache write failed", zap.Error(err))
	}
}

// Len reports the number of vectors held in memory.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.local.Len()
}

// ConnectRedis opens and pings a Redis client. Any failure is logged and
// reported as a nil client so callers run with the in-memory tier only.
func ConnectRedis(ctx context.Context, url string, logger *zap.Logger) *redis.Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("invalid redis url, shared embedding cache disabled", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, shared embedding cache disabled", zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func redisKey(model, normalized string) string {
	sum := sha256.Sum256([]byte(model + "|" + normalized))
	return redisKeyPrefix + hex.EncodeToString(sum[:])[:12]
}
