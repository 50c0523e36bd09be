package timespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"1d", true},
		{"7d", true},
		{"14d", true},
		{"30d", true},
		{"all", true},
		{"", false},
		{"2d", false},
		{"7", false},
		{"ALL", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.token), "token=%q", tt.token)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"1d", 1},
		{"7d", 7},
		{"14d", 14},
		{"30d", 30},
		{"all", 0},
		{"", 0},
		{"xd", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Days(tt.token), "token=%q", tt.token)
	}
}

func TestCutoff(t *testing.T) {
	now := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

	cutoff, ok := Cutoff("7d", now)
	assert.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), cutoff)

	cutoff, ok = Cutoff("1d", now)
	assert.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -1), cutoff)

	// "all" 与未传参都不设下界
	_, ok = Cutoff("all", now)
	assert.False(t, ok)
	_, ok = Cutoff("", now)
	assert.False(t, ok)
}

func TestCutoffEpoch(t *testing.T) {
	now := time.Unix(1714041600, 0).UTC()

	epoch, ok := CutoffEpoch("1d", now)
	assert.True(t, ok)
	assert.Equal(t, "1713955200", epoch)

	_, ok = CutoffEpoch("all", now)
	assert.False(t, ok)
}
