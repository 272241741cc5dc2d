package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore disables response caching. Generated reports carry a per-request
// timestamp banner and must not be served stale by intermediaries.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
