package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"content-api/internal/logger"
)

// AccessLog logs one structured line per request once it has been served.
// Server errors are logged at error level, client errors at warn.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		log := logger.WithRequestID(GetRequestID(c))
		switch {
		case status >= 500:
			log.Error("Request served", attrs...)
		case status >= 400:
			log.Warn("Request served", attrs...)
		default:
			log.Info("Request served", attrs...)
		}
	}
}
