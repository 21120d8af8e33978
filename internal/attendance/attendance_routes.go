package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/attendance")
	{
		records.POST("/", h.Create)
		records.GET("/", h.List)
		records.GET("/:id", h.GetByID)
		records.DELETE("/:id", h.Delete)
	}
}

func RegisterV2Routes(r *gin.RouterGroup, h *V2Handler) {
	records := r.Group("/attendance")
	{
		records.POST("/", h.Create)
		records.GET("/", h.List)
	}
}
