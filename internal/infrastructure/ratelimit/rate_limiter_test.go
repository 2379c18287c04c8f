package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(rl *RateLimiter, start time.Time) *time.Time {
	current := start
	rl.now = func() time.Time { return current }
	return &current
}

func TestRateLimiter_DispatchDecisionBurst(t *testing.T) {
	rl := NewRateLimiter()
	fixedClock(rl, time.Unix(1700000000, 0))

	for i := 0; i < 10; i++ {
		ok, wait := rl.Allow("u1", ActionDispatchDecision)
		assert.True(t, ok, "request %d", i)
		assert.Zero(t, wait)
	}

	ok, wait := rl.Allow("u1", ActionDispatchDecision)
	assert.False(t, ok)
	assert.InDelta(t, float64(6*time.Second), float64(wait), float64(time.Millisecond))

	tokens, max := rl.GetStatus("u1", ActionDispatchDecision)
	assert.Equal(t, 0, tokens)
	assert.Equal(t, 10, max)
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiterWithPolicies(map[string]Policy{
		"probe": {Burst: 1, Every: time.Second},
	})
	now := fixedClock(rl, time.Unix(1700000000, 0))

	ok, _ := rl.Allow("u1", "probe")
	assert.True(t, ok)

	ok, wait := rl.Allow("u1", "probe")
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	*now = now.Add(time.Second)
	ok, _ = rl.Allow("u1", "probe")
	assert.True(t, ok)
}

func TestRateLimiter_UsersAreIndependent(t *testing.T) {
	rl := NewRateLimiterWithPolicies(map[string]Policy{
		"probe": {Burst: 1, Every: time.Minute},
	})
	fixedClock(rl, time.Unix(1700000000, 0))

	ok, _ := rl.Allow("u1", "probe")
	assert.True(t, ok)
	ok, _ = rl.Allow("u2", "probe")
	assert.True(t, ok)
	ok, _ = rl.Allow("u1", "probe")
	assert.False(t, ok)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter()
	now := fixedClock(rl, time.Unix(1700000000, 0))

	rl.Allow("u1", ActionSearch)
	*now = now.Add(2 * time.Hour)
	rl.Cleanup()

	tokens, max := rl.GetStatus("u1", ActionSearch)
	assert.Zero(t, tokens)
	assert.Zero(t, max)
}
