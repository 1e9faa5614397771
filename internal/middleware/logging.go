package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"codeberg.org/simpleapi/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	// request bodies above this size are not captured for debug logging
	maxCapturedBodySize = 10 << 10 // 10KB

	// logged body previews are truncated to this many bytes
	maxLoggedBodySize = 500

	// response previews are only captured for bodies under this size
	maxCapturedResponseSize = 1000
)

// captures response bytes for debug logging while passing them through
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.body.Len() < maxCapturedResponseSize {
		w.body.Write(b)
	}

	return w.ResponseWriter.Write(b)
}

// returns a middleware that logs one line per request at INFO, escalating
// to WARN for 4xx and ERROR for 5xx. At DEBUG it also logs request and
// response details.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		clientIP := c.ClientIP()

		debug := logger.Enabled(slog.LevelDebug)

		if debug {
			logRequestDetails(c, method, path)
		}

		var recorder *responseRecorder
		if debug {
			recorder = &responseRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
			c.Writer = recorder
		}

		c.Next()

		status := c.Writer.Status()
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0

		args := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration_ms", durationMs,
			"ip", clientIP,
		}

		switch {
		case status >= 500:
			logger.Error("request", args...)
		case status >= 400:
			logger.Warn("request", args...)
		default:
			logger.Info("request", args...)
		}

		if debug && recorder != nil {
			logger.Debug("response",
				"status", status,
				"headers", c.Writer.Header(),
				"body", truncate(recorder.body.Bytes()),
			)
		}
	}
}

// logs request headers, query params and a body preview
func logRequestDetails(c *gin.Context, method, path string) {
	var body []byte

	if c.Request.Body != nil {
		length := c.Request.ContentLength
		if length > 0 && length < maxCapturedBodySize {
			body, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBodySize))
			// restore the body for the handler
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
	}

	logger.Debug("request details",
		"method", method,
		"path", path,
		"headers", c.Request.Header,
		"query", c.Request.URL.Query(),
		"body", truncate(body),
	)
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBodySize {
		return string(b[:maxLoggedBodySize])
	}

	return string(b)
}
