package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEpoch_Milliseconds(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := NormalizeEpoch(1700000000000, fallback)
	assert.Equal(t, time.UnixMilli(1700000000000), got)
}

func TestNormalizeEpoch_Seconds(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := NormalizeEpoch(1700000000, fallback)
	assert.Equal(t, time.Unix(1700000000, 0), got)
}

func TestNormalizeEpoch_Fallback(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, fallback, NormalizeEpoch(0, fallback))
	assert.Equal(t, fallback, NormalizeEpoch(12345, fallback))
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	assert.NoError(t, err)

	at := time.Date(2026, 3, 15, 18, 42, 11, 0, loc)
	start := StartOfDay(at)

	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 15, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, loc, start.Location())
}
