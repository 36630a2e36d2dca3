package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/http/middleware"
	"clubapi/internal/service"
	"clubapi/internal/storage"
	"clubapi/internal/upload"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	DB       *sql.DB
	Auth     service.AuthService
	Events   service.EventService
	Team     service.TeamService
	Projects service.ProjectService
	Settings service.SettingService
	Saver    *upload.Saver
	Files    storage.Storage

	Sessions   middleware.SessionChecker
	CookieName string
	SessionTTL time.Duration
}

// RegisterRoutes attaches all HTTP routes to app. Reads are public; every
// route that mutates the record store sits behind the admin gate.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Get("/uploads/:name", ServeUpload(d.Files))

	admin := middleware.RequireAdmin(d.Sessions, d.CookieName)
	api := app.Group("/api")

	api.Post("/login", Login(d.Auth, d.CookieName, d.SessionTTL))
	api.Post("/logout", Logout(d.Auth, d.CookieName))

	api.Get("/events", ListEvents(d.Events))
	api.Post("/events", admin, CreateEvent(d.Events, d.Saver))
	api.Delete("/events/:id", admin, DeleteEvent(d.Events))

	api.Get("/team", ListTeam(d.Team))
	api.Post("/team", admin, CreateTeamMember(d.Team, d.Saver))
	api.Delete("/team/:id", admin, DeleteTeamMember(d.Team))

	api.Get("/projects", ListProjects(d.Projects))
	api.Post("/projects", admin, CreateProject(d.Projects))
	api.Delete("/projects/:id", admin, DeleteProject(d.Projects))

	api.Get("/settings", GetSettings(d.Settings))
	api.Post("/settings", admin, UpdateSettings(d.Settings))
}
