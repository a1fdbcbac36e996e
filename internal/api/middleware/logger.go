package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger attaches a request-scoped zerolog logger to the request context and
// emits one line per request with method, path, status, and latency.
// Handlers retrieve the logger with zerolog.Ctx(c.Request.Context()).
func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := logger.With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("remote_ip", c.ClientIP()).
			Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		reqLogger.Info().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
