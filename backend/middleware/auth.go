package middleware

import (
	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/utils"
)

const sessionKey = "session"

// AuthMiddleware verifies the session token and stores the session on the
// request context for handlers downstream.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := utils.ExtractSession(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// AdminMiddleware requires an authenticated session with the admin claim.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := utils.ExtractSession(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !session.IsAdmin {
			return utils.Forbidden(c, "Admin access required")
		}
		c.Locals(sessionKey, session)
		return c.Next()
	}
}
