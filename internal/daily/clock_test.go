package daily_test

import (
	"testing"
	"time"

	"github.com/dom/wardle/internal/daily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_DateKey(t *testing.T) {
	clock := daily.NewClock(time.UTC)
	assert.Equal(t, "Fri Oct 16 2026", clock.DateKey(time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)))

	// the same instant is a different calendar day further east
	tokyo, err := daily.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Sat Oct 17 2026", daily.NewClock(tokyo).DateKey(time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)))
}

func TestClock_ShouldReset(t *testing.T) {
	clock := daily.NewClock(time.UTC)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastReset time.Time
		want      bool
	}{
		{"never reset", time.Time{}, true},
		{"yesterday evening", time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC), true},
		{"exactly midnight", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), false},
		{"earlier today", time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.ShouldReset(tt.lastReset, now)
			assert.Equal(t, tt.want, got)
			// idempotent for the same inputs
			assert.Equal(t, got, clock.ShouldReset(tt.lastReset, now))
		})
	}
}

func TestClock_BoundaryUsesConfiguredLocation(t *testing.T) {
	ny, err := daily.LoadLocation("America/New_York")
	require.NoError(t, err)
	clock := daily.NewClock(ny)

	now := time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC) // Oct 15, 23:00 in New York
	boundary := clock.ResetBoundary(now)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, ny), boundary)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, ny), clock.NextReset(now))

	lastReset := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.False(t, clock.ShouldReset(lastReset, now))
	assert.True(t, daily.NewClock(time.UTC).ShouldReset(lastReset, now))
}

func TestClock_WithNow(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	clock := daily.NewClock(time.UTC).WithNow(func() time.Time { return fixed })
	assert.Equal(t, fixed, clock.Now())
}

func TestLoadLocation(t *testing.T) {
	loc, err := daily.LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = daily.LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = daily.LoadLocation("Nowhere/Special")
	assert.Error(t, err)
}
