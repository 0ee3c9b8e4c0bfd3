package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/matchops/settlement-report/internal/repository"
)

// InspectionStore runs the raw schema and data queries behind /api/debug.
type InspectionStore interface {
	StadiumColumns(ctx context.Context) ([]repository.Row, error)
	StadiumSample(ctx context.Context) ([]repository.Row, error)
	MatchStadiums(ctx context.Context) ([]repository.Row, error)
	MatchTypes(ctx context.Context) ([]repository.Row, error)
	MatchByID(ctx context.Context, id int64) (repository.Row, error)
	MatchesByDate(ctx context.Context, date string) ([]repository.Row, error)
}

// rawList adapts a no-argument inspection query into a handler that returns its rows unshaped.
func rawList(log *zap.Logger, query func(context.Context) ([]repository.Row, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := query(c.UserContext())
		if err != nil {
			return serverError(c, log, err)
		}
		return c.JSON(rows)
	}
}

// DebugStadiumColumns handles GET /api/debug/stadium-columns.
func DebugStadiumColumns(store InspectionStore, log *zap.Logger) fiber.Handler {
	return rawList(log, store.StadiumColumns)
}

// DebugStadiumData handles GET /api/debug/stadium-data (first five rows).
func DebugStadiumData(store InspectionStore, log *zap.Logger) fiber.Handler {
	return rawList(log, store.StadiumSample)
}

// DebugMatchStadium handles GET /api/debug/match-stadium.
func DebugMatchStadium(store InspectionStore, log *zap.Logger) fiber.Handler {
	return rawList(log, store.MatchStadiums)
}

// DebugMatchType handles GET /api/debug/match-type.
func DebugMatchType(store InspectionStore, log *zap.Logger) fiber.Handler {
	return rawList(log, store.MatchTypes)
}

// DebugMatch handles GET /api/debug/match/:id. A missing match encodes as null.
func DebugMatch(store InspectionStore, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, "match id must be an integer")
		}

		row, err := store.MatchByID(c.UserContext(), int64(id))
		if err != nil {
			return serverError(c, log, err)
		}
		if row == nil {
			return c.JSON(nil)
		}
		return c.JSON(row)
	}
}

// DebugMatchesByDate handles GET /api/debug/matches-by-date?date=YYYY-MM-DD.
func DebugMatchesByDate(store InspectionStore, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return badRequest(c, errDateRequired)
		}
		if !isDate(date) {
			return badRequest(c, errDateFormat)
		}

		rows, err := store.MatchesByDate(c.UserContext(), date)
		if err != nil {
			return serverError(c, log, err)
		}
		return c.JSON(rows)
	}
}
