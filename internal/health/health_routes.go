package health

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/api/health", h.Detailed)
}
