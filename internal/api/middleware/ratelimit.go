package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sirpyerre/inventario-api/internal/api/metrics"
)

// RateLimiter throttles credential endpoints with a Redis fixed window per
// client IP. Key format: ratelimit:<path>:<ip>, expiring after the window.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Middleware counts requests and rejects with 429 once the window limit is
// exceeded. INCR and EXPIRE NX travel in one pipeline so the key can never
// be left without a TTL, which would lock the client out for good. A Redis
// failure fails open: auth must stay available when the limiter store is
// down.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.RealIP())

			var incr *redis.IntCmd
			_, err := rl.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
				incr = pipe.Incr(ctx, key)
				pipe.ExpireNX(ctx, key, rl.window)
				return nil
			})
			if err != nil {
				return next(c)
			}

			if incr.Val() > int64(rl.limit) {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}

			return next(c)
		}
	}
}
