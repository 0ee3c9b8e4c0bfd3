package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/matchops/settlement-report/internal/models"
	"github.com/matchops/settlement-report/internal/reports"
)

// ReportStore runs the two business queries. *repository.Store satisfies it.
type ReportStore interface {
	SettlementSummaries(ctx context.Context, start, end string) ([]models.SettlementSummaryRow, error)
	ManagerMatches(ctx context.Context, managerID int64, start, end string) ([]models.MatchDetailRow, error)
}

// GetSettlements returns a handler for GET /api/settlements?start_date=&end_date=.
// The response is one entry per staff manager, ordered by name, with totals that are
// always numbers.
func GetSettlements(store ReportStore, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, problem := dateRange(c)
		if problem != "" {
			return badRequest(c, problem)
		}

		rows, err := store.SettlementSummaries(c.UserContext(), start, end)
		if err != nil {
			return serverError(c, log, err)
		}

		return c.JSON(reports.ShapeSummaries(rows))
	}
}

// GetManagerMatches returns a handler for GET /api/manager/:id/matches?start_date=&end_date=.
// Rows come back in kick-off order with a display title in stadium_name.
func GetManagerMatches(store ReportStore, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		managerID, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, "manager id must be an integer")
		}

		start, end, problem := dateRange(c)
		if problem != "" {
			return badRequest(c, problem)
		}

		rows, err := store.ManagerMatches(c.UserContext(), int64(managerID), start, end)
		if err != nil {
			return serverError(c, log, err)
		}

		return c.JSON(reports.ShapeMatchDetails(rows))
	}
}
