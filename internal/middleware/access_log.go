package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/pkg/logger"
)

// AccessLog records one structured line per request: method, path, status and
// latency. Purely observational; it never alters handler behavior.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(c)).
			Msg("request")
	}
}
