package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hanmart/internal/domain"
)

// result sends a core Result as JSON. Business failures are 422 so clients
// can tell them from transport errors; the body always carries the
// user-facing message and severity for the notification sink.
func result(c *fiber.Ctx, r domain.Result) error {
	status := fiber.StatusOK
	if !r.Success {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(r)
}

// resultWith is result plus extra payload fields on success.
func resultWith(c *fiber.Ctx, r domain.Result, extra fiber.Map) error {
	if !r.Success {
		return result(c, r)
	}
	body := fiber.Map{"success": r.Success, "message": r.Message, "severity": r.Severity}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(body)
}
