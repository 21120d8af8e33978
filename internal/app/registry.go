package app

import (
	"bluscan-backend/internal/attendance"
	"bluscan-backend/internal/config"
	"bluscan-backend/internal/health"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	cfg config.App,
) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	attendanceV2Handler := attendance.NewV2Handler()
	healthHandler := health.NewHandler(cfg.APIVersion)

	// --- Routes Registration ---
	health.RegisterRoutes(router, healthHandler)

	v1 := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(v1, attendanceHandler)
	}

	// v2 is a declared surface with a permanent stub behind it.
	v2 := router.Group("/api/v2")
	{
		attendance.RegisterV2Routes(v2, attendanceV2Handler)
	}
}
