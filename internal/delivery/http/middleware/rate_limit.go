package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"viang-solution-backend/pkg/logger"
)

// RateLimitStore abstracts the per-key window counters so the limiter can
// run against Redis under multi-instance deployment or in-process memory
// otherwise. Only the limiter reads or mutates these counters.
type RateLimitStore interface {
	// Incr bumps the counter for key inside a fixed window anchored at the
	// key's first request, starting a fresh window when none exists or the
	// previous one elapsed. It returns the count within the current window.
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix to separate limiters sharing a store
	KeyPrefix string
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Primary counter store
	Store RateLimitStore
	// Optional store used when the primary errors (e.g. Redis outage)
	Fallback RateLimitStore
}

// ContactRateLimitConfig returns the submission limiter configuration:
// limit requests per window per client IP.
func ContactRateLimitConfig(limit int, window time.Duration, store, fallback RateLimitStore) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
		Store:     store,
		Fallback:  fallback,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimit rejects requests above the configured threshold with a uniform
// 429 body. The response deliberately carries no remaining-time detail.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + keyFunc(c)

		count, err := cfg.Store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			logger.Log.Warn("rate limit store unavailable", "error", err)
			if cfg.Fallback != nil {
				count, err = cfg.Fallback.Incr(c.Request.Context(), key, cfg.Window)
			}
			if err != nil {
				// Fail open: availability over strictness for a contact form.
				c.Next()
				return
			}
		}

		if count > cfg.Limit {
			logger.Log.Warn("rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later.",
			})
			return
		}

		c.Next()
	}
}

// Lua script for atomic increment with TTL set on first increment.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns the count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RedisStore counts windows in Redis so all instances share one view.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, error) {
	ttlSeconds := int(window.Seconds())
	result, err := s.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	count, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected redis result format")
	}
	return int(count), nil
}

// memoryEntry tracks the count for one key within its window.
type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is the single-instance counter store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		// The window boundary is fixed at first-request time; denied
		// requests past the threshold never extend it.
		s.entries[key] = &memoryEntry{count: 1, resetAt: now.Add(window)}
		return 1, nil
	}

	entry.count++
	return entry.count, nil
}

// StartSweeper clears expired entries periodically until ctx is done.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.mu.Lock()
				for key, entry := range s.entries {
					if now.After(entry.resetAt) {
						delete(s.entries, key)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}
