package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestClock_TodayUsesStudioZone(t *testing.T) {
	// 01:30 UTC ainda é o dia anterior em São Paulo
	utc := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)
	c := &Clock{loc: Location(DefaultTimezone), now: func() time.Time { return utc }}

	assert.Equal(t, "2026-03-09", c.Today())
}

func TestFixedClock(t *testing.T) {
	c := FixedClock(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-02", c.Today())
}
