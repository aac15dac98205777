package ratelimit

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryLimiter_Burst(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewInMemoryLimiter(clock, 4, time.Second, 2)

	assert.True(t, l.Allow("advance"))
	assert.True(t, l.Allow("advance"))
	assert.False(t, l.Allow("advance"))

	clock.Advance(250 * time.Millisecond)
	assert.True(t, l.Allow("advance"))
	assert.False(t, l.Allow("advance"))
}

func TestInMemoryLimiter_KeysAreIndependent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewInMemoryLimiter(clock, 1, time.Second, 1)

	assert.True(t, l.Allow("advance"))
	assert.False(t, l.Allow("advance"))
	assert.True(t, l.Allow("retreat"))
}
