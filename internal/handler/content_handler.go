package handler

import (
	"errors"

	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

// GET /api/v1/about
func (h *ContentHandler) GetAbout(c *fiber.Ctx) error {
	about, err := h.service.GetAbout(c.UserContext())
	if err != nil {
		if errors.Is(err, repository.ErrAboutNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch about us"})
	}
	return c.JSON(about)
}

// PUT /api/v1/admin/about
func (h *ContentHandler) UpdateAbout(c *fiber.Ctx) error {
	var req model.AboutUs
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.service.UpdateAbout(c.UserContext(), &req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "About us updated", "data": saved})
}
