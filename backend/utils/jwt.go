package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"zenyoga/backend/config"
	"zenyoga/backend/models"
)

// GenerateSessionToken signs a JWT carrying the session identity. The portal
// has no credentialed auth; the token only proves the email passed the
// allow-list check at login time.
func GenerateSessionToken(session models.Session, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"email": session.Email,
		"name":  session.Name,
		"admin": session.IsAdmin,
		"exp":   time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractSession parses and verifies the Authorization token and returns the
// session it carries.
func ExtractSession(c *fiber.Ctx, cfg *config.Config) (models.Session, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return models.Session{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return models.Session{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Session{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return models.Session{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid email in token")
	}
	name, _ := claims["name"].(string)
	admin, _ := claims["admin"].(bool)

	return models.Session{Email: email, Name: name, IsAdmin: admin}, nil
}
