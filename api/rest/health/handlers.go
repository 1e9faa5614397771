package health

import (
	"net/http"

	"codeberg.org/simpleapi/server/internal/metadata"
	"github.com/gin-gonic/gin"
)

// Handler returns the service liveness status
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: metadata.ServiceName(),
	})
}

// IndexHandler returns the service name and version
// @Summary Service information
// @Tags Health
// @Produce json
// @Success 200 {object} health.IndexResponse
// @Router / [get]
func IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Service: metadata.ServiceName(),
		Version: metadata.Version(),
	})
}
