package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/storage"
)

// ServeUpload handles GET /uploads/:name, streaming a stored file from
// whichever storage backend is configured.
func ServeUpload(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		rc, info, err := store.Get(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return jsonError(c, fiber.StatusNotFound, "Not Found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
