package middleware

import (
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

// RequestLog logs one line per request with method, path and duration.
func RequestLog(log *zap.Logger) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()

		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
