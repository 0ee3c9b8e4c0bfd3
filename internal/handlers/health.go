// Package handlers contains the HTTP route handlers for the settlement report API.
// Each handler reads the request, calls the repository, shapes the rows and writes JSON.
package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It never touches the database so load balancers can tell "process up" apart from
// "database reachable"; the latter shows up as 500s on the report endpoints.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
