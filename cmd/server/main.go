package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/logger"
	"github.com/agenthands/cinescene/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv()

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	srv, err := server.New(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize server", zap.Error(err))
	}
	r := srv.SetupRouter()

	zl.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
