package bridge

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bnema/spacesync/internal/logging"
)

// contextMiddleware attaches the bridge logger to every request context.
func (s *Server) contextMiddleware() gin.HandlerFunc {
	logger := logging.FromContext(s.baseCtx)
	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), *logger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("bridge request")
	}
}

// metricsMiddleware records request counts and latency per route template.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
