package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/upload"
)

// jsonError writes the {"error": message} body every failure path shares.
// Message must be safe for clients; internal detail stays in the logs.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// uploadError maps a Saver failure to a response: validation rejections carry
// their reason in a 400, anything else is an opaque 500.
func uploadError(c *fiber.Ctx, err error) error {
	var verr *upload.ValidationError
	if errors.As(err, &verr) {
		return jsonError(c, fiber.StatusBadRequest, verr.Reason)
	}
	return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// ErrorHandler returns the Fiber global error handler. It standardizes
// errors that escape the handlers without leaking internals.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return jsonError(c, status, "Not Found")
		case fiber.StatusMethodNotAllowed:
			return jsonError(c, status, "Method Not Allowed")
		case fiber.StatusBadRequest:
			return jsonError(c, status, "Bad Request")
		default:
			return jsonError(c, status, "Internal Server Error")
		}
	}
}
