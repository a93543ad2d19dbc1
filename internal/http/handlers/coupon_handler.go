package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hanmart/internal/domain"
	applog "hanmart/internal/log"
	"hanmart/internal/services"
	"hanmart/internal/validate"
)

type CouponHandler struct {
	Coupons *services.CouponService
}

func (h *CouponHandler) List(c *fiber.Ctx) error {
	coupons, err := h.Coupons.List()
	if err != nil {
		applog.Error(c, "coupons.list.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"coupons": coupons})
}

func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var cp domain.Coupon
	if err := c.BodyParser(&cp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.Coupons.Add(cp)
	if err != nil {
		applog.Error(c, "coupons.create.error", err, nil)
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "coupons.create", map[string]any{"code": cp.Code})
	return result(c, res)
}

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	code, ok := validate.CouponCode(c.Params("code"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid coupon code"})
	}
	res, err := h.Coupons.Delete(code)
	if err != nil {
		applog.Error(c, "coupons.delete.error", err, fiber.Map{"code": code})
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "coupons.delete", map[string]any{"code": code})
	return result(c, res)
}
