package middleware

import (
	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/models"
)

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(c *fiber.Ctx) (models.Session, bool) {
	session, ok := c.Locals(sessionKey).(models.Session)
	return session, ok
}
