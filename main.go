package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/pkg/config"
	"github.com/FACorreiaa/travelmind/internal/pkg/logger"
	"github.com/FACorreiaa/travelmind/internal/server"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = crashConfig()
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, zap.String("service", cfg.Observability.ServiceName))
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	srv := server.New(cfg, zl)

	if cfgErr != nil {
		zl.Error("Invalid configuration, serving crash report", zap.Error(cfgErr))
		srv.SetRouter(server.CrashedRouter(cfgErr))
		return srv.Run(ctx)
	}

	otelShutdown, err := server.InitObservability(cfg, version, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zl.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	router, err := server.SetupRouter(ctx, cfg, zl)
	if err != nil {
		zl.Error("Startup failed, serving crash report", zap.Error(err))
		router = server.CrashedRouter(err)
	}
	srv.SetRouter(router)

	err = srv.Run(ctx)
	zl.Info("Graceful shutdown complete")
	return err
}

// crashConfig is just enough configuration to report a startup failure.
func crashConfig() *config.Config {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}
	return &config.Config{
		Server:        config.ServerConfig{Port: port},
		Log:           config.LogConfig{Level: "info", Format: "json"},
		Observability: config.ObservabilityConfig{ServiceName: "travelmind-api"},
	}
}
