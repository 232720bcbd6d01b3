// Package ratelimit implements a fixed-window request counter in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter decides whether one more request under key is allowed.
//
// Contract:
//   - Allow counts the request and reports whether it is within the limit.
//   - An error means the decision could not be made; callers let the
//     request through.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Counter is the subset of the Redis client the limiter needs.
type Counter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// allowScript counts one hit and makes sure the key carries a TTL in the
// same step. A key left without one is given the window again, so a failed
// earlier call cannot pin a client at the limit.
const allowScript = `
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`

// RedisLimiter allows limit requests per key in each window. The window
// starts with the first request, when the key is created with a TTL.
// Counting and expiry run as one Lua script.
type RedisLimiter struct {
	counter Counter
	limit   int64
	window  time.Duration
	prefix  string
}

func NewRedisLimiter(c Counter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{counter: c, limit: int64(limit), window: window, prefix: "ratelimit:"}
}

// NewRedisClient connects to addr. The connection is checked with PING.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key

	n, err := l.counter.Eval(ctx, allowScript, []string{k}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("count %s: %w", k, err)
	}

	return n <= l.limit, nil
}

// Unlimited allows everything. It stands in when no Redis is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }
