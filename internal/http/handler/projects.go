package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/service"
)

type projectRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Tech        string `json:"tech" form:"tech"`
	RepoLink    string `json:"repoLink" form:"repoLink"`
}

// ListProjects handles GET /api/projects.
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := svc.List(c.UserContext())
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(projects)
	}
}

// CreateProject handles POST /api/projects. Projects carry no files, so the
// body is plain JSON or form data.
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req projectRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}

		project, err := svc.Create(c.UserContext(), service.ProjectInput{
			Title:       req.Title,
			Description: req.Description,
			Tech:        req.Tech,
			RepoLink:    req.RepoLink,
		})
		if err != nil {
			if errors.Is(err, service.ErrTitleRequired) {
				return jsonError(c, fiber.StatusBadRequest, err.Error())
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true, "project": project})
	}
}

// DeleteProject handles DELETE /api/projects/:id.
func DeleteProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return jsonError(c, fiber.StatusNotFound, "Project not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
