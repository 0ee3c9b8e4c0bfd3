package middleware

import "github.com/gofiber/fiber/v2"

// RequireStaff only lets requests through whose token carried staff=true.
// It must run after DebugAuth, which populates the staff flag.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff, ok := c.Locals(LocalStaff).(bool)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}
		if !staff {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}
		return c.Next()
	}
}
