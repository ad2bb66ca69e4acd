package handler

import (
	"errors"

	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	service service.MenuService
}

func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

// GetPublicMenu lists available items for the storefront
// GET /api/v1/menu?category=Food|Beverage
func (h *MenuHandler) GetPublicMenu(c *fiber.Ctx) error {
	items, err := h.service.ListPublic(c.UserContext(), c.Query("category"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// GET /api/v1/admin/menu
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	items, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// POST /api/v1/admin/menu
func (h *MenuHandler) CreateMenuItem(c *fiber.Ctx) error {
	var item model.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateItem(c.UserContext(), &item, getUserID(c), getUserName(c)); err != nil {
		if errors.Is(err, service.ErrMenuNameExists) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Menu item created", "data": item})
}

// PUT /api/v1/admin/menu/:id
func (h *MenuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu item ID"})
	}

	var item model.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateItem(c.UserContext(), id, &item, getUserID(c), getUserName(c))
	if err != nil {
		return menuError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Menu item updated", "data": updated})
}

// DELETE /api/v1/admin/menu/:id
func (h *MenuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu item ID"})
	}

	if err := h.service.DeleteItem(c.UserContext(), id, getUserID(c), getUserName(c)); err != nil {
		return menuError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}

func menuError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrMenuItemNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrMenuNameExists):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}
