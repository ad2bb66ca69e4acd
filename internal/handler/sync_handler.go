package handler

import (
	"errors"

	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SyncHandler struct {
	service service.SyncService
}

func NewSyncHandler(s service.SyncService) *SyncHandler {
	return &SyncHandler{service: s}
}

// TriggerSync runs one pass right away and reports its counts
// POST /api/v1/admin/sync/trigger
func (h *SyncHandler) TriggerSync(c *fiber.Ctx) error {
	res, err := h.service.Trigger(c.UserContext(), getUserName(c))
	if err != nil {
		if errors.Is(err, menusync.ErrSourceUnavailable) {
			return c.Status(502).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"created": res.Created,
		"updated": res.Updated,
		"errors":  res.Errors,
	})
}

// GET /api/v1/admin/sync/status
func (h *SyncHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// GetRuns returns recent passes, newest first
// GET /api/v1/admin/sync/runs?limit=50
func (h *SyncHandler) GetRuns(c *fiber.Ctx) error {
	runs, err := h.service.RecentRuns(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sync runs"})
	}
	return c.JSON(runs)
}

// ExportMenu writes the current menu back to the spreadsheet
// POST /api/v1/admin/sync/export
func (h *SyncHandler) ExportMenu(c *fiber.Ctx) error {
	n, err := h.service.ExportToSheet(c.UserContext(), getUserName(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportDisabled):
			return c.Status(503).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, menusync.ErrSourceUnavailable):
			return c.Status(502).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Menu exported", "rows": n})
}
