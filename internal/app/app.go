package app

import (
	"bluscan-backend/internal/attendance"
	"bluscan-backend/internal/config"
	"bluscan-backend/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

// BuildApp connects the infrastructure, migrates the schema and wires
// every module's routes onto the router.
func BuildApp(router *gin.Engine, cfg config.App) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.DBMaxRetries,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&attendance.AttendanceRecord{}); err != nil {
		return err
	}

	registerModules(router, db, cfg)
	return nil
}
