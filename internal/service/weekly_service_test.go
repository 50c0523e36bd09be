package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekLabel(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // 周一
	assert.Equal(t, "Mon: 2026-01-05", weekLabel(day))

	day = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sun: 2026-08-30", weekLabel(day))
}

func TestUntilMidnight(t *testing.T) {
	now := time.Date(2026, 4, 20, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, untilMidnight(now))

	now = time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24*time.Hour, untilMidnight(now))
}

func TestSpanLabel(t *testing.T) {
	// 未传 timespan 时标签仍为默认值
	assert.Equal(t, "7d", spanLabel(""))
	assert.Equal(t, "30d", spanLabel("30d"))
	assert.Equal(t, "all", spanLabel("all"))
}

func TestWindowStart(t *testing.T) {
	assert.Nil(t, windowStart(""))
	assert.Nil(t, windowStart("all"))

	since := windowStart("7d")
	if assert.NotNil(t, since) {
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), *since, time.Minute)
	}
}
