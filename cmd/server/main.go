// cmd/server/main.go
// Entry point for the settlement report API: loads configuration, connects to MySQL,
// builds the Fiber app and serves it until SIGINT/SIGTERM.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matchops/settlement-report/internal/config"
	"github.com/matchops/settlement-report/internal/database"
	"github.com/matchops/settlement-report/internal/handlers"
	"github.com/matchops/settlement-report/internal/logger"
	"github.com/matchops/settlement-report/internal/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("host", cfg.DBHost), zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}()

	store := repository.New(db, cfg.Timezone)
	app := handlers.NewApp(cfg, store, log)

	// Shut down cleanly so in-flight report queries finish before the pool closes.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	if cfg.IsDevelopment() {
		log.Info("starting server (development)", zap.String("url", "http://localhost:"+cfg.Port))
	} else {
		log.Info("starting server (production)", zap.String("port", cfg.Port))
	}
	if !cfg.DebugRoutes {
		log.Info("debug routes disabled")
	}

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
