package main

import (
	"time"

	"bluscan-backend/internal/app"
	"bluscan-backend/internal/bootstrap"
	"bluscan-backend/internal/config"
	"bluscan-backend/internal/middleware"
	"bluscan-backend/internal/shared/apperror"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS - permissive, the callers are a mobile app and a web frontend
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"X-Request-ID",
	}
	corsCfg.AllowMethods = []string{
		"GET",
		"POST",
		"DELETE",
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RequestID(logger))
	r.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	// build dependency + routes
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.HTTPPort,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
