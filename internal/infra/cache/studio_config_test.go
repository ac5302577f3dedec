package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func TestNoopStudioConfigCache(t *testing.T) {
	var c StudioConfigCache = NoopStudioConfigCache{}
	cfg := models.DefaultStudioConfig()

	c.Set(context.Background(), &cfg)
	got, ok := c.Get(context.Background())

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisStudioConfigCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisStudioConfigCache(client, time.Minute, nil)
	cfg := models.DefaultStudioConfig()

	assert.NotPanics(t, func() {
		c.Set(context.Background(), &cfg)
		c.Invalidate(context.Background())
	})
	got, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
