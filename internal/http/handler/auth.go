package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubapi/internal/service"
)

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /api/login. The client IP keys the rate limiter, so a
// throttled address is denied before its credentials are even looked at. On
// success the session token travels only in an HttpOnly cookie.
func Login(svc service.AuthService, cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}

		token, err := svc.Login(c.UserContext(), req.Username, req.Password, c.IP())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRateLimited):
				return jsonError(c, fiber.StatusTooManyRequests, "Too many login attempts. Please try again after a minute.")
			case errors.Is(err, service.ErrInvalidCredentials):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "Invalid credentials",
				})
			default:
				return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(fiber.Map{"success": true})
	}
}

// Logout handles POST /api/logout: the server-side session dies immediately,
// then the cookie is cleared. Logging out without a session succeeds.
func Logout(svc service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cookieName); token != "" {
			svc.Logout(token)
		}

		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(fiber.Map{"success": true})
	}
}
