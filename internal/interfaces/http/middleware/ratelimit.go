package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/ratelimit"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

// RateLimit throttles by client IP. Applied only to the anonymous auth
// endpoints where credential guessing is possible; authenticated traffic is
// not limited. When the limiter backend is unreachable the request is allowed
// rather than turning a Redis outage into a full outage.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
