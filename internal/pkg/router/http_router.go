package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SJB-Parking/crudpark/internal/pkg/middleware"
	"github.com/SJB-Parking/crudpark/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Session store must exist before the operator context middleware runs.
	session.NewSessionStore()
	app.Use(middleware.OperatorContextMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
