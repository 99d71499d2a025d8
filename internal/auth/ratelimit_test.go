package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRateLimiter(t *testing.T) *RateLimiter {
	rl := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     3,
		WindowDuration:  time.Minute,
		LockoutDuration: time.Minute,
	})
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	rl := newTestRateLimiter(t)

	allowed, _ := rl.Allow("1.2.3.4", "owner")
	assert.True(t, allowed)

	rl.RecordFailure("1.2.3.4", "owner")
	rl.RecordFailure("1.2.3.4", "owner")

	allowed, _ = rl.Allow("1.2.3.4", "owner")
	assert.True(t, allowed)
}

func TestRateLimiterLocksAfterMaxAttempts(t *testing.T) {
	rl := newTestRateLimiter(t)

	rl.RecordFailure("1.2.3.4", "owner")
	rl.RecordFailure("1.2.3.4", "owner")
	locked, retryAfter := rl.RecordFailure("1.2.3.4", "owner")
	assert.True(t, locked)
	assert.Equal(t, time.Minute, retryAfter)

	allowed, retryAfter := rl.Allow("1.2.3.4", "owner")
	assert.False(t, allowed)
	assert.Positive(t, retryAfter)
}

func TestRateLimiterKeysByIPAndUsername(t *testing.T) {
	rl := newTestRateLimiter(t)

	for i := 0; i < 3; i++ {
		rl.RecordFailure("1.2.3.4", "owner")
	}

	allowed, _ := rl.Allow("5.6.7.8", "owner")
	assert.True(t, allowed, "different IP is not affected")

	allowed, _ = rl.Allow("1.2.3.4", "other")
	assert.True(t, allowed, "different username is not affected")
}

func TestRateLimiterRecordSuccessClears(t *testing.T) {
	rl := newTestRateLimiter(t)

	for i := 0; i < 3; i++ {
		rl.RecordFailure("1.2.3.4", "owner")
	}
	rl.RecordSuccess("1.2.3.4", "owner")

	allowed, _ := rl.Allow("1.2.3.4", "owner")
	assert.True(t, allowed)
}
