package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	errDatesRequired = "start_date and end_date are required"
	errDatesFormat   = "start_date and end_date must be in YYYY-MM-DD format"
	errDateRequired  = "date is required"
	errDateFormat    = "date must be in YYYY-MM-DD format"
)

// dateRange reads the required start_date and end_date query parameters.
// On failure it returns the message to send with a 400.
func dateRange(c *fiber.Ctx) (start, end, problem string) {
	start = c.Query("start_date")
	end = c.Query("end_date")

	if start == "" || end == "" {
		return "", "", errDatesRequired
	}
	if !isDate(start) || !isDate(end) {
		return "", "", errDatesFormat
	}
	return start, end, ""
}

// isDate reports whether s is a calendar date in "2006-01-02" form.
func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
