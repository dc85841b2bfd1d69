package controllers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/SJB-Parking/crudpark/internal/pkg/parking"
)

var validate = validator.New()

// timeFormat is the wire format for all timestamps in API responses.
const timeFormat = time.RFC3339

// respondParkingError maps the parking error taxonomy to HTTP: validation 400,
// not-found 404, business conflicts 409, data-access 500. The kind is also
// echoed in the body so terminals can branch without parsing status codes.
func respondParkingError(c *fiber.Ctx, err error) error {
	kind := parking.KindOf(err)

	status := fiber.StatusInternalServerError
	switch kind {
	case parking.KindValidation:
		status = fiber.StatusBadRequest
	case parking.KindNotFound:
		status = fiber.StatusNotFound
	case parking.KindBusiness:
		status = fiber.StatusConflict
	}

	message := err.Error()
	if kind == parking.KindDataAccess {
		// Store details stay in the logs, not in operator-facing responses.
		message = "a storage error occurred, please retry or escalate"
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   string(kind),
		"message": message,
	})
}

// parseBody binds and validates a JSON request body in one step. Failures come
// back as validation errors for respondParkingError to translate.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return parking.NewValidationError("invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return parking.NewValidationError(err.Error())
	}
	return nil
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
