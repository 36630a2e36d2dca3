package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/service"
	"clubapi/internal/upload"
)

// maxImagesPerEvent bounds the images[] multipart field.
const maxImagesPerEvent = 10

// ListEvents handles GET /api/events.
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.UserContext())
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(events)
	}
}

// CreateEvent handles POST /api/events (multipart/form-data). Each file in
// the images field runs the full upload pipeline before the record is
// written; the stored record embeds the returned reference paths, never the
// client filenames.
func CreateEvent(svc service.EventService, saver *upload.Saver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.EventInput{
			Title:       c.FormValue("title"),
			Date:        c.FormValue("date"),
			Description: c.FormValue("description"),
			Link:        c.FormValue("link"),
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			files := form.File["images"]
			if len(files) > maxImagesPerEvent {
				return jsonError(c, fiber.StatusBadRequest,
					fmt.Sprintf("at most %d images are accepted per event", maxImagesPerEvent))
			}
			for _, fh := range files {
				ref, err := saveUpload(c, saver, fh)
				if err != nil {
					return uploadError(c, err)
				}
				in.Images = append(in.Images, ref)
			}
		}

		ev, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrTitleRequired) {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "event": ev})
	}
}

// DeleteEvent handles DELETE /api/events/:id.
func DeleteEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return jsonError(c, fiber.StatusNotFound, "Event not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// saveUpload streams one multipart file through the upload pipeline and
// returns its reference path.
func saveUpload(c *fiber.Ctx, saver *upload.Saver, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return saver.Save(c.UserContext(), f, upload.FileMeta{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
}
