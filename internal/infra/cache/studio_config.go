package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

const studioConfigKey = "studio:config"

// StudioConfigCache guarda a configuração visual, lida em toda abertura do front.
type StudioConfigCache interface {
	Get(ctx context.Context) (*models.StudioConfig, bool)
	Set(ctx context.Context, cfg *models.StudioConfig)
	Invalidate(ctx context.Context)
}

// ======================================================
// REDIS
// ======================================================

type RedisStudioConfigCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisStudioConfigCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStudioConfigCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStudioConfigCache{client: client, ttl: ttl, log: log.Named("cache")}
}

func (c *RedisStudioConfigCache) Get(ctx context.Context) (*models.StudioConfig, bool) {
	raw, err := c.client.Get(ctx, studioConfigKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("studio config cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var cfg models.StudioConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		c.log.Warn("studio config cache corrupted", zap.Error(err))
		return nil, false
	}
	cfg.ID = models.StudioConfigID
	return &cfg, true
}

func (c *RedisStudioConfigCache) Set(ctx context.Context, cfg *models.StudioConfig) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, studioConfigKey, b, c.ttl).Err(); err != nil {
		c.log.Warn("studio config cache set failed", zap.Error(err))
	}
}

func (c *RedisStudioConfigCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, studioConfigKey).Err(); err != nil {
		c.log.Warn("studio config cache invalidate failed", zap.Error(err))
	}
}

// ======================================================
// NOOP (sem REDIS_ADDR)
// ======================================================

type NoopStudioConfigCache struct{}

func (NoopStudioConfigCache) Get(context.Context) (*models.StudioConfig, bool) { return nil, false }
func (NoopStudioConfigCache) Set(context.Context, *models.StudioConfig)        {}
func (NoopStudioConfigCache) Invalidate(context.Context)                       {}

var (
	_ StudioConfigCache = (*RedisStudioConfigCache)(nil)
	_ StudioConfigCache = NoopStudioConfigCache{}
)
