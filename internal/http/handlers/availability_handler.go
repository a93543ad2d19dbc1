package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "hanmart/internal/log"
	"hanmart/internal/services"
)

type AvailabilityHandler struct {
	Avail *services.AvailabilityService
}

// Check reports IN_STOCK / LOW_STOCK / SOLD_OUT for a product, cart-adjusted.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	productID := strings.TrimSpace(c.Query("productId"))
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}

	avail, found, err := h.Avail.Check(productID)
	if err != nil {
		applog.Error(c, "availability.error", err, fiber.Map{"productId": productID})
		return fiber.ErrInternalServerError
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	return c.JSON(avail)
}
