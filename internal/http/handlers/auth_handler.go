package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hanmart/internal/log"
	"hanmart/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	sid, err := h.Auth.Login(body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
	}
	c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true, SameSite: "Lax"})
	applog.Audit(c, "auth.login", nil)
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		if err := h.Auth.Logout(sid); err != nil {
			applog.Error(c, "auth.logout.error", err, nil)
		}
	}
	c.ClearCookie("sid")
	return c.JSON(fiber.Map{"success": true})
}
