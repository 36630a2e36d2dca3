package handler

import (
	"github.com/gofiber/fiber/v2"

	"clubapi/internal/service"
)

type settingsRequest struct {
	URL string `json:"url" form:"url"`
}

// GetSettings handles GET /api/settings.
func GetSettings(svc service.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		link, err := svc.GformsLink(c.UserContext())
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"gformsLink": link})
	}
}

// UpdateSettings handles POST /api/settings, upserting the signup form link.
func UpdateSettings(svc service.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req settingsRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if req.URL == "" {
			return jsonError(c, fiber.StatusBadRequest, "url is required")
		}
		if err := svc.SetGformsLink(c.UserContext(), req.URL); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
