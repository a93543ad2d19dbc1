package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hanmart/internal/log"
	"hanmart/internal/services"
)

type OrderHandler struct {
	Checkout *services.CheckoutService
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	receipt, res, err := h.Checkout.Place()
	if err != nil {
		applog.Error(c, "order.place.error", err, nil)
		return fiber.ErrInternalServerError
	}
	if !res.Success {
		return result(c, res)
	}
	applog.Audit(c, "order.place", map[string]any{
		"orderNumber": receipt.OrderNumber,
		"total":       receipt.Totals.TotalAfterDiscount,
	})
	return resultWith(c, res, fiber.Map{
		"orderNumber": receipt.OrderNumber,
		"totals":      receipt.Totals,
	})
}
