package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hanmart/internal/log"
	"hanmart/internal/services"
	"hanmart/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View()
	if err != nil {
		applog.Error(c, "cart.view.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(cv)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	res, err := h.Cart.Add(id)
	if err != nil {
		applog.Error(c, "cart.add.error", err, fiber.Map{"productId": id})
		return fiber.ErrInternalServerError
	}
	return result(c, res)
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.Cart.UpdateQuantity(id, body.Quantity)
	if err != nil {
		applog.Error(c, "cart.update.error", err, fiber.Map{"productId": id})
		return fiber.ErrInternalServerError
	}
	return result(c, res)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	if err := h.Cart.Remove(id); err != nil {
		applog.Error(c, "cart.remove.error", err, fiber.Map{"productId": id})
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	code, ok := validate.CouponCode(body.Code)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid coupon code"})
	}
	res, err := h.Cart.ApplyCoupon(code)
	if err != nil {
		applog.Error(c, "cart.coupon.error", err, fiber.Map{"code": code})
		return fiber.ErrInternalServerError
	}
	return result(c, res)
}

func (h *CartHandler) ClearCoupon(c *fiber.Ctx) error {
	if err := h.Cart.ClearCoupon(); err != nil {
		applog.Error(c, "cart.coupon.clear.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true})
}
