package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pxtown_backend/pkg/utils/jwt"
)

// AuthMiddleware guards the admin routes: a valid bearer token puts the
// admin claims into c.Locals("admin").
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
