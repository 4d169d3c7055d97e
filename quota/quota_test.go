package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/config"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestReserveWithoutLimits(t *testing.T) {
	l := NewLimiter(config.QuotaConfig{})
	for i := 0; i < 5; i++ {
		ok, err := l.Reserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, -1, l.Remaining())
}

func TestReserveDailyLimit(t *testing.T) {
	l := NewLimiter(config.QuotaConfig{RequestsPerDay: 2})
	l.now = fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	for i := 0; i < 2; i++ {
		ok, err := l.Reserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 0, l.Remaining())

	ok, err := l.Reserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "daily quota should be exhausted")

	// 날짜가 바뀌면 카운터가 초기화된다.
	l.now = fixedClock(time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC))
	assert.Equal(t, 2, l.Remaining())
	ok, err = l.Reserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReserveCanceledWhileWaiting(t *testing.T) {
	l := NewLimiter(config.QuotaConfig{RequestsPerMinute: 1})
	l.now = fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	ok, err := l.Reserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err = l.Reserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNegativeLimitsMeanUnlimited(t *testing.T) {
	l := NewLimiter(config.QuotaConfig{RequestsPerDay: -3, RequestsPerMinute: -1})
	assert.Equal(t, 0, l.dailyLimit)
	assert.Equal(t, time.Duration(0), l.interval)
}
