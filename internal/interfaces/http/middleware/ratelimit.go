package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordnest/internal/infrastructure/ratelimit"
	"wordnest/internal/shared/logger"
	"wordnest/internal/shared/utils"
)

// RateLimiter throttles the credential endpoints per client IP. The
// limiter itself fails open when its backend is unavailable, so an
// outage never locks everyone out.
type RateLimiter struct {
	limiter ratelimit.Limiter
	cfg     ratelimit.Config
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, cfg ratelimit.Config, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, cfg: cfg, logger: logger}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.cfg)
		if err != nil {
			rl.logger.Warnw("rate limit check failed", "error", err, "key", key)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
