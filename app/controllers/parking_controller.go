package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/SJB-Parking/crudpark/app/models"
	"github.com/SJB-Parking/crudpark/app/repository"
	"github.com/SJB-Parking/crudpark/internal/pkg/opcontext"
	"github.com/SJB-Parking/crudpark/internal/pkg/parking"
)

// parkingService is installed by the router once the database is up.
var parkingService *parking.Service

// SetParkingService wires the shared parking service used by the handlers.
func SetParkingService(s *parking.Service) {
	parkingService = s
}

type entryRequest struct {
	LicensePlate string `json:"license_plate" validate:"required"`
}

type exitRequest struct {
	TicketID      uint   `json:"ticket_id"`
	LicensePlate  string `json:"license_plate"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type classifyRequest struct {
	LicensePlate string `json:"license_plate" validate:"required"`
}

// HandleEntry records a vehicle entering the lot and returns the open ticket.
func HandleEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := parseBody(c, &req); err != nil {
		return respondParkingError(c, err)
	}

	ticket, err := parkingService.ProcessEntry(req.LicensePlate, opcontext.OperatorID(c))
	if err != nil {
		return respondParkingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticketResponse(ticket))
}

// HandleExit closes a ticket (by id or by plate), prices the stay and records
// the payment when an amount is due.
func HandleExit(c *fiber.Ctx) error {
	var req exitRequest
	if err := parseBody(c, &req); err != nil {
		return respondParkingError(c, err)
	}
	if req.TicketID == 0 && req.LicensePlate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation",
			"message": "ticket_id or license_plate is required",
		})
	}

	operatorID := opcontext.OperatorID(c)
	var (
		result *parking.ExitResult
		err    error
	)
	if req.TicketID != 0 {
		result, err = parkingService.ProcessExit(req.TicketID, operatorID, req.PaymentMethod)
	} else {
		result, err = parkingService.ProcessExitByPlate(req.LicensePlate, operatorID, req.PaymentMethod)
	}
	if err != nil {
		return respondParkingError(c, err)
	}
	return c.JSON(exitResponse(result))
}

// HandleExitPreview prices a stay without closing the ticket, so the operator
// can show the amount before the customer confirms a payment method.
func HandleExitPreview(c *fiber.Ctx) error {
	var (
		result *parking.ExitResult
		err    error
	)
	if idParam := c.Query("ticket_id"); idParam != "" {
		id, convErr := strconv.ParseUint(idParam, 10, 32)
		if convErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation",
				"message": "ticket_id must be a positive number",
			})
		}
		result, err = parkingService.PreviewExit(uint(id))
	} else if plate := c.Query("license_plate"); plate != "" {
		result, err = parkingService.PreviewExitByPlate(plate)
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation",
			"message": "ticket_id or license_plate query parameter is required",
		})
	}
	if err != nil {
		return respondParkingError(c, err)
	}
	return c.JSON(exitResponse(result))
}

// HandleClassifyPlate reports the vehicle type a plate would be classified as.
func HandleClassifyPlate(c *fiber.Ctx) error {
	var req classifyRequest
	if err := parseBody(c, &req); err != nil {
		return respondParkingError(c, err)
	}

	vehicleType := parking.ClassifyPlate(req.LicensePlate)
	if vehicleType == "" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "business",
			"message": "license plate matches no known format",
		})
	}
	return c.JSON(fiber.Map{
		"license_plate": parking.NormalizePlate(req.LicensePlate),
		"vehicle_type":  vehicleType,
	})
}

// HandleGetTicket returns a ticket with its vehicle and payment for display
// and reprint.
func HandleGetTicket(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation",
			"message": "ticket id must be a positive number",
		})
	}

	ticket, svcErr := parkingService.GetTicket(uint(id))
	if svcErr != nil {
		return respondParkingError(c, svcErr)
	}

	resp := ticketResponse(ticket)
	payment, payErr := repository.GetGlobalFactory().GetPaymentRepository().GetByTicketID(ticket.ID)
	if payErr == nil {
		resp["payment"] = payment
	} else if !errors.Is(payErr, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to load payment",
		})
	}
	return c.JSON(resp)
}

// HandleListOpenTickets returns the vehicles currently inside, oldest first.
func HandleListOpenTickets(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	repo := repository.GetGlobalFactory().GetTicketRepository()
	tickets, err := repo.ListOpen(offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to load open tickets",
		})
	}
	total, err := repo.CountOpen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "data_access",
			"message": "failed to count open tickets",
		})
	}

	items := make([]fiber.Map, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{
		"tickets": items,
		"total":   total,
	})
}

// ticketResponse shapes a ticket for the API, flattening the joined vehicle.
func ticketResponse(t *models.Ticket) fiber.Map {
	return fiber.Map{
		"id":                       t.ID,
		"folio":                    t.Folio,
		"license_plate":            t.Vehicle.LicensePlate,
		"vehicle_type":             t.Vehicle.VehicleType,
		"operator_id":              t.OperatorID,
		"subscription_id":          t.SubscriptionID,
		"ticket_type":              t.TicketType,
		"status":                   t.Status,
		"entry_datetime":           t.EntryDatetime.UTC().Format(timeFormat),
		"exit_datetime":            formatTimePtr(t.ExitDatetime),
		"parking_duration_minutes": t.ParkingDurationMinutes,
		"qr_code_data":             t.QRCodeData,
	}
}

func exitResponse(r *parking.ExitResult) fiber.Map {
	resp := fiber.Map{
		"ticket":           ticketResponse(r.Ticket),
		"exit_time":        r.ExitTime.UTC().Format(timeFormat),
		"duration_minutes": r.DurationMinutes,
		"amount":           r.Amount,
		"is_free":          r.IsFree,
		"free_reason":      r.FreeReason,
	}
	if r.Payment != nil {
		resp["payment"] = r.Payment
	}
	return resp
}
