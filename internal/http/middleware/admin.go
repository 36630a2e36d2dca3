package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SessionChecker reports whether a token references a live admin session.
// *session.Authority satisfies it.
type SessionChecker interface {
	Authenticated(token string) bool
}

// RequireAdmin guards a route behind a valid admin session. The token is read
// from the session cookie; a missing, unknown or expired token gets a 403 and
// the wrapped handler never runs.
func RequireAdmin(sessions SessionChecker, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Authenticated(c.Cookies(cookieName)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}
