package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/SJB-Parking/crudpark/app/controllers"
	"github.com/SJB-Parking/crudpark/internal/pkg/constants"
	"github.com/SJB-Parking/crudpark/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New())

	v1 := api.Group(constants.APIv1Route)

	// Public: authentication and the tariff board at the entrance.
	v1.Post(constants.LoginRoute, controllers.HandleLogin)
	v1.Get(constants.RatesRoute, controllers.HandleListRates)
	v1.Post(constants.ClassifyRoute, controllers.HandleClassifyPlate)

	// Everything that touches tickets needs a logged-in operator.
	v1.Post(constants.LogoutRoute, middleware.RequireOperator, controllers.HandleLogout)
	v1.Post(constants.EntriesRoute, middleware.RequireOperator, controllers.HandleEntry)
	v1.Post(constants.ExitsRoute, middleware.RequireOperator, controllers.HandleExit)
	v1.Get(constants.ExitPreviewRoute, middleware.RequireOperator, controllers.HandleExitPreview)
	v1.Get(constants.OpenTicketsRoute, middleware.RequireOperator, controllers.HandleListOpenTickets)
	v1.Get(constants.TicketsRoute+"/:id", middleware.RequireOperator, controllers.HandleGetTicket)
	v1.Get(constants.StatusRoute, middleware.RequireOperator, controllers.HandleLotStatus)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
