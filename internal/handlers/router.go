package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/matchops/settlement-report/internal/config"
	"github.com/matchops/settlement-report/internal/middleware"
)

// Store is everything the routes need from the database layer.
type Store interface {
	ReportStore
	InspectionStore
}

// NewApp builds the Fiber application with global middleware and every route registered.
//
//	GET /health
//	GET /api/settlements
//	GET /api/manager/:id/matches
//	GET /api/debug/*          (only when cfg.DebugRoutes)
//	GET /                     static dashboard from cfg.StaticDir
func NewApp(cfg *config.Config, store Store, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:           "Settlement Report API",
		ErrorHandler:      ErrorHandler(log),
		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	// --- Global middleware ---
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", HealthCheck)

	api := app.Group("/api")
	api.Get("/settlements", GetSettlements(store, log))
	api.Get("/manager/:id<int>/matches", GetManagerMatches(store, log))

	// Debug routes read raw tables. They stay unmounted unless explicitly enabled,
	// and outside development they need a staff token signed with SECRET_KEY.
	if cfg.DebugRoutes {
		debug := api.Group("/debug", middleware.DebugAuth(cfg), middleware.RequireStaff())
		debug.Get("/stadium-columns", DebugStadiumColumns(store, log))
		debug.Get("/stadium-data", DebugStadiumData(store, log))
		debug.Get("/match-stadium", DebugMatchStadium(store, log))
		debug.Get("/match-type", DebugMatchType(store, log))
		debug.Get("/match/:id<int>", DebugMatch(store, log))
		debug.Get("/matches-by-date", DebugMatchesByDate(store, log))
	}

	// The dashboard is a single page; "/" serves index.html from the static directory.
	app.Static("/", cfg.StaticDir)

	return app
}
