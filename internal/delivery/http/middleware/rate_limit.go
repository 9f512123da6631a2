package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix so different endpoints get independent counters
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var rateLimitStore sync.Map

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns current count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RateLimit caps requests per client IP over a fixed window. Counters live in
// Redis when configured; otherwise in process memory, which fails open across
// restarts and replicas.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "rl:ip:"
	}

	return func(c *gin.Context) {
		key := prefix + c.ClientIP()

		count := increment(c.Request.Context(), key, cfg.Window)
		if count > cfg.Limit {
			response.Error(c, http.StatusTooManyRequests, "Trop de requêtes. Veuillez patienter avant de réessayer.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func increment(ctx context.Context, key string, window time.Duration) int {
	if rdb := redis.Client(); rdb != nil {
		count, err := rdb.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Int()
		if err == nil {
			return count
		}
		logger.Log.Warn("Rate limit Redis error, falling back to memory", "error", err)
	}
	return memoryIncrement(key, window)
}

func memoryIncrement(key string, window time.Duration) int {
	actual, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := actual.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
