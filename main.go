package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SJB-Parking/crudpark/app/controllers"
	"github.com/SJB-Parking/crudpark/app/repository"
	"github.com/SJB-Parking/crudpark/internal/pkg/cache"
	"github.com/SJB-Parking/crudpark/internal/pkg/database"
	"github.com/SJB-Parking/crudpark/internal/pkg/env"
	"github.com/SJB-Parking/crudpark/internal/pkg/parking"
	"github.com/SJB-Parking/crudpark/internal/pkg/router"
)

// Root entrypoint, kept in sync with cmd/crudpark for `go run .`.
func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())
	controllers.SetParkingService(parking.NewService(database.GetDB()))

	app := fiber.New(fiber.Config{
		AppName: "crudpark",
	})

	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	router.InstallRouter(app)

	return app
}
