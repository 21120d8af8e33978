package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// Root answers the plain liveness probe on /.
func (h *Handler) Root(c *gin.Context) {
	zap.L().Debug("health check requested")
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "Mobile Attendance System API",
		"version": h.version,
	})
}

// Detailed answers /api/health with static component status.
func (h *Handler) Detailed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    "connected",
		"api_version": "v1",
	})
}
