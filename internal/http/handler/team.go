package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/service"
	"clubapi/internal/upload"
)

// ListTeam handles GET /api/team.
func ListTeam(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := svc.List(c.UserContext())
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(members)
	}
}

// CreateTeamMember handles POST /api/team (multipart/form-data, optional
// single photo field).
func CreateTeamMember(svc service.TeamService, saver *upload.Saver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.TeamInput{
			Name: c.FormValue("name"),
			Role: c.FormValue("role"),
			Dept: c.FormValue("dept"),
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			if files := form.File["photo"]; len(files) > 0 {
				ref, err := saveUpload(c, saver, files[0])
				if err != nil {
					return uploadError(c, err)
				}
				in.Photo = ref
			}
		}

		member, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "member": member})
	}
}

// DeleteTeamMember handles DELETE /api/team/:id.
func DeleteTeamMember(svc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return jsonError(c, fiber.StatusNotFound, "Team member not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
