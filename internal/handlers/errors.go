package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/matchops/settlement-report/internal/middleware"
)

// badRequest writes a 400 with a fixed, client-facing message.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// serverError logs err with a stack trace and writes a 500 carrying the error text.
// Database failures are not retried; the caller sees them directly.
func serverError(c *fiber.Ctx, log *zap.Logger, err error) error {
	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
		zap.Stack("stack"),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// ErrorHandler renders errors that escape handlers (unknown routes, recovered panics)
// in the same {"error": ...} shape the endpoints use.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error",
				zap.String("path", c.Path()),
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
