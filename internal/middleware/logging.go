package middleware

import (
	"strconv"
	"time"

	"bibliomate/internal/logger"
	"bibliomate/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request and records HTTP metrics.
// Paths are labelled by route template so unknown URLs share one series.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		took := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(path).Observe(took.Seconds())

		entry := logger.For(c.Request.Context()).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
			"remote": c.ClientIP(),
			"took":   took,
		})
		switch {
		case status >= 500:
			entry.Error("http.request")
		case status >= 400:
			entry.Warn("http.request")
		default:
			entry.Info("http.request")
		}
	}
}
