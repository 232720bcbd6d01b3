package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter evaluates the allow script against in-memory state.
type fakeCounter struct {
	counts  map[string]int64
	ttls    map[string]time.Duration
	scripts int
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounter) Eval(_ context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	if script != allowScript || len(keys) != 1 || len(args) != 1 {
		return redis.NewCmdResult(nil, errors.New("unexpected script call"))
	}
	f.scripts++

	k := keys[0]
	f.counts[k]++
	if _, ok := f.ttls[k]; f.counts[k] == 1 || !ok {
		f.ttls[k] = time.Duration(args[0].(int64)) * time.Millisecond
	}
	return redis.NewCmdResult(f.counts[k], nil)
}

func TestRedisLimiter_Allow(t *testing.T) {
	c := newFakeCounter()
	l := NewRedisLimiter(c, 2, time.Minute)
	ctx := context.Background()

	for i, want := range []bool{true, true, false, false} {
		ok, err := l.Allow(ctx, "1.2.3.4:/login")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "request %d", i+1)
	}

	ok, err := l.Allow(ctx, "5.6.7.8:/login")
	require.NoError(t, err)
	assert.True(t, ok, "other clients have their own window")

	assert.Equal(t, map[string]time.Duration{
		"ratelimit:1.2.3.4:/login": time.Minute,
		"ratelimit:5.6.7.8:/login": time.Minute,
	}, c.ttls)
	assert.Equal(t, 5, c.scripts, "one round trip per request")
}

func TestRedisLimiter_KeyWithoutTTLGetsWindow(t *testing.T) {
	c := newFakeCounter()
	c.counts["ratelimit:k"] = 7

	ok, err := NewRedisLimiter(c, 5, 30*time.Second).Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, c.ttls["ratelimit:k"], "a stuck counter expires again")
}

func TestRedisLimiter_Error(t *testing.T) {
	boom := errors.New("connection refused")
	c := newFakeCounter()
	c.err = boom

	_, err := NewRedisLimiter(c, 1, time.Second).Allow(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestUnlimited(t *testing.T) {
	ok, err := Unlimited{}.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
}
