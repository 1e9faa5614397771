package middleware

import (
	"net/http"
	"runtime/debug"

	"codeberg.org/simpleapi/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// returns a middleware that converts panics into a generic JSON 500.
// The panic value and stack are logged, never exposed to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"details": "An unexpected error occurred. Please try again later.",
				})
			}
		}()

		c.Next()
	}
}
