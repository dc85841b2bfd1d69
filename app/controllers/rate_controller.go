package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SJB-Parking/crudpark/app/repository"
	"github.com/SJB-Parking/crudpark/internal/pkg/cache"
)

const (
	ratesCacheKey = "rates:board"
	ratesCacheTTL = time.Minute
)

// HandleListRates returns all configured rates for the tariff board at the
// entrance. The list changes rarely, so it is served from the cache when warm;
// pricing during exit always reads the store directly.
func HandleListRates(c *fiber.Ctx) error {
	if cached, err := cache.Get(ratesCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	rates, err := repository.GetGlobalFactory().GetRateRepository().List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to load rates",
		})
	}

	body, err := json.Marshal(fiber.Map{"rates": rates})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to encode rates",
		})
	}
	// Cache failures only cost the next request a database read.
	_ = cache.Set(ratesCacheKey, string(body), ratesCacheTTL)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// HandleLotStatus returns a snapshot for the booth dashboard: vehicles
// currently inside, known plates and the amount collected today.
func HandleLotStatus(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	open, err := repos.Ticket.CountOpen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to count open tickets",
		})
	}
	vehicles, err := repos.Vehicle.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to count vehicles",
		})
	}
	collected, err := repos.Payment.SumForDay(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to sum payments",
		})
	}

	return c.JSON(fiber.Map{
		"open_tickets":    open,
		"known_vehicles":  vehicles,
		"collected_today": collected,
	})
}
