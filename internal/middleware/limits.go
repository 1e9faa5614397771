package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns a middleware that rejects request bodies larger than maxBytes
// with a 413 response. Bodies without a declared length are wrapped with
// MaxBytesReader so oversized chunked uploads fail on read.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   "Payload too large",
				"details": "Request payload exceeds maximum allowed size",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}
