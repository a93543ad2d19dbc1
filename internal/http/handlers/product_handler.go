package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hanmart/internal/domain"
	applog "hanmart/internal/log"
	"hanmart/internal/services"
	"hanmart/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List serves the storefront catalog, optionally filtered by ?q= over
// name/description.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	q := ""
	if strings.TrimSpace(rawQ) != "" {
		var ok bool
		if q, ok = validate.Q(rawQ); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
		}
	}
	products, err := h.Catalog.Search(q)
	if err != nil {
		applog.Error(c, "products.list.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.Catalog.Add(p)
	if err != nil {
		applog.Error(c, "products.create.error", err, nil)
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "products.create", map[string]any{"name": p.Name})
	return result(c, res)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := h.Catalog.Update(id, p)
	if err != nil {
		applog.Error(c, "products.update.error", err, fiber.Map{"id": id})
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "products.update", map[string]any{"id": id})
	return result(c, res)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	res, err := h.Catalog.Delete(id)
	if err != nil {
		applog.Error(c, "products.delete.error", err, fiber.Map{"id": id})
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return result(c, res)
}
