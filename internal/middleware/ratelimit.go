package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/acadrec/acadrec-backend/internal/config"
	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LoginRateLimiter limits login attempts per client IP using a fixed
// window counter in Redis, so the limit holds across replicas. Fails open
// when Redis is unavailable: a broken limiter must not lock everyone out.
type LoginRateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewLoginRateLimiter creates a limiter from config. A zero limit disables it.
func NewLoginRateLimiter(cfg *config.Config, rdb *redis.Client) *LoginRateLimiter {
	return &LoginRateLimiter{
		rdb:    rdb,
		limit:  cfg.LoginRateLimit,
		window: cfg.LoginRateWindow,
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
func (rl *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 || rl.rdb == nil {
			c.Next()
			return
		}

		key := config.RateKey.LoginAttemptKey(c.ClientIP())
		ctx := c.Request.Context()

		// INCR and the window TTL run in one transaction so a failure
		// between them cannot leave a counter that never expires.
		// ExpireNX only sets a TTL when the key has none, which also
		// repairs any TTL-less counter left behind by a past failover.
		pipe := rl.rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, rl.window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Msg("rate limiter redis error, failing open")
			c.Next()
			return
		}
		count := incr.Val()

		remaining := rl.limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > rl.limit {
			ttl, _ := rl.rdb.TTL(ctx, key).Result()
			if ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl/time.Second)+1))
			}
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}

		c.Next()
	}
}
