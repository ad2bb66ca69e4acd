package handler

import (
	"go-resto-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk ambil User Info dari JWT Context (set by middleware.RequireAuth)
func getUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return "system"
	}
	return userID
}

func getUserName(c *fiber.Ctx) string {
	userName, ok := c.Locals(middleware.LocalUserName).(string)
	if !ok {
		return "Unknown"
	}
	return userName
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
