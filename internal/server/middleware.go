package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jfuginay/courseforge-ai/internal/logger"
)

// CORS allows browser clients from any origin. The app has no auth and
// no cookies, so the permissive policy is safe.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(cfg)
}

// RequestLog logs method, path, status, and latency for every request.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// RateLimit holds a token-bucket limiter over the expensive generation
// endpoints. Generation calls are slow and billed per token; there is
// no reason to let a single deployment fire them unbounded.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			RespondError(c, http.StatusTooManyRequests, "Too many requests", "")
			c.Abort()
			return
		}
		c.Next()
	}
}
