package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"wordnest/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if userID := UserID(c); userID != 0 {
			args = append(args, "user_id", userID)
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("http request completed", args...)
		case c.Writer.Status() >= 400:
			log.Warnw("http request completed", args...)
		default:
			log.Debugw("http request completed", args...)
		}
	}
}
