package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_DropsIdleKeys(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	l := NewIPRateLimiter(rate.Limit(1), 1)
	l.now = func() time.Time { return now }

	first := l.GetLimiter("10.0.0.1")
	l.GetLimiter("10.0.0.2")
	assert.Equal(t, 2, l.Len())
	assert.Same(t, first, l.GetLimiter("10.0.0.1"))

	// 10.0.0.2 some; 10.0.0.1 foi visto há menos que o TTL
	now = now.Add(limiterIdleTTL / 2)
	l.GetLimiter("10.0.0.1")

	now = now.Add(limiterIdleTTL / 2)
	l.GetLimiter("10.0.0.3")

	assert.Equal(t, 2, l.Len())
	assert.Same(t, first, l.GetLimiter("10.0.0.1"))

	// tudo parado além do TTL: só sobra quem acabou de chegar
	now = now.Add(2 * limiterIdleTTL)
	l.GetLimiter("10.0.0.4")
	assert.Equal(t, 1, l.Len())
}
