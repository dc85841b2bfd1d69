package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SJB-Parking/crudpark/internal/pkg/opcontext"
)

// RequireOperator ensures a logged-in operator session for API routes and
// returns JSON 401 otherwise.
func RequireOperator(c *fiber.Ctx) error {
	if !opcontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "operator login required",
		})
	}
	return c.Next()
}
