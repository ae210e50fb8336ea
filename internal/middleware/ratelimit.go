package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-task-converter/pkg/response"
)

// RateLimit rejects requests once the shared token bucket is empty.
// Applied to the processing routes only.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
