package parking

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SJB-Parking/crudpark/app/models"
	"github.com/SJB-Parking/crudpark/app/repository"
	"github.com/SJB-Parking/crudpark/internal/pkg/scancode"
)

// Service orchestrates vehicle entry and exit. Every mutating operation runs
// inside exactly one database transaction; any failure rolls the whole request
// back, so no partial vehicle/ticket/payment state ever becomes visible.
type Service struct {
	db *gorm.DB
}

// NewService creates a parking service on top of a GORM handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ExitResult is the priced outcome of an exit or exit preview.
type ExitResult struct {
	Ticket          *models.Ticket  `json:"ticket"`
	ExitTime        time.Time       `json:"exit_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Amount          float64         `json:"amount"`
	IsFree          bool            `json:"is_free"`
	FreeReason      string          `json:"free_reason,omitempty"`
	Payment         *models.Payment `json:"payment,omitempty"`
}

// ProcessEntry records a vehicle entering the lot and returns the open ticket.
// The vehicle row is created on first sight; a second entry while a ticket is
// still open is rejected as a business error before anything is written.
func (s *Service) ProcessEntry(plate string, operatorID uint) (*models.Ticket, error) {
	plate = NormalizePlate(plate)
	if plate == "" {
		return nil, NewValidationError("license plate is required")
	}
	if len(plate) != 6 {
		return nil, NewValidationError("license plate must be exactly 6 characters")
	}
	if operatorID == 0 {
		return nil, NewValidationError("operator id is required")
	}

	vehicleType := ClassifyPlate(plate)
	if vehicleType == "" {
		return nil, NewBusinessError(
			"invalid license plate format: Car is 3 letters + 3 digits (ABC123), " +
				"Motorcycle is 3 letters + 2 digits + 1 letter (ABC12D)")
	}

	var ticket *models.Ticket
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)

		vehicle, err := repos.Vehicle.FindOrCreate(plate, vehicleType)
		if err != nil {
			return NewDataAccessError("finding or creating vehicle", err)
		}

		hasOpen, err := repos.Ticket.HasOpen(vehicle.ID)
		if err != nil {
			return NewDataAccessError("checking open tickets", err)
		}
		if hasOpen {
			return NewBusinessError("vehicle already has an open ticket")
		}

		now := time.Now()
		subscriptionID, err := repos.Subscription.FindActiveIDForVehicle(vehicle.ID, now)
		if err != nil {
			return NewDataAccessError("checking active subscription", err)
		}
		ticketType := models.TicketTypeGuest
		if subscriptionID != nil {
			ticketType = models.TicketTypeMonthly
		}

		folio, err := repos.Ticket.NextFolio()
		if err != nil {
			return NewDataAccessError("generating folio", err)
		}

		t := &models.Ticket{
			Folio:          folio,
			VehicleID:      vehicle.ID,
			OperatorID:     operatorID,
			SubscriptionID: subscriptionID,
			EntryDatetime:  now,
			TicketType:     ticketType,
			// The final payload needs the ticket id, which only exists after
			// the insert; a folio-keyed placeholder goes in first.
			QRCodeData: fmt.Sprintf("PENDING:%s", folio),
		}
		if err := repos.Ticket.Create(t); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against a concurrent entry for this vehicle.
				return NewBusinessError("vehicle already has an open ticket")
			}
			return NewDataAccessError("creating ticket", err)
		}

		payload := scancode.Build(t.ID, plate, t.EntryDatetime)
		if err := repos.Ticket.UpdateQRCode(t.ID, payload); err != nil {
			return NewDataAccessError("updating ticket scan code", err)
		}
		t.QRCodeData = payload
		t.Vehicle = *vehicle

		ticket = t
		return nil
	})
	if err != nil {
		return nil, ensureKind(err, "processing entry")
	}
	return ticket, nil
}

// ProcessExit closes the ticket with the given id, prices the stay and, for a
// chargeable amount above zero, records the payment.
func (s *Service) ProcessExit(ticketID, operatorID uint, paymentMethod string) (*ExitResult, error) {
	if ticketID == 0 {
		return nil, NewValidationError("ticket id is required")
	}
	if err := validateExitInput(operatorID, paymentMethod); err != nil {
		return nil, err
	}
	return s.exit(byID(ticketID), operatorID, paymentMethod, true)
}

// ProcessExitByPlate closes the open ticket for a license plate.
func (s *Service) ProcessExitByPlate(plate string, operatorID uint, paymentMethod string) (*ExitResult, error) {
	norm, err := validatePlateInput(plate)
	if err != nil {
		return nil, err
	}
	if err := validateExitInput(operatorID, paymentMethod); err != nil {
		return nil, err
	}
	return s.exit(byPlate(norm), operatorID, paymentMethod, true)
}

// PreviewExit prices the stay for the ticket with the given id without
// closing it or recording a payment. The ticket stays OPEN.
func (s *Service) PreviewExit(ticketID uint) (*ExitResult, error) {
	if ticketID == 0 {
		return nil, NewValidationError("ticket id is required")
	}
	return s.exit(byID(ticketID), 0, "", false)
}

// PreviewExitByPlate prices the stay for the open ticket of a plate without mutating it.
func (s *Service) PreviewExitByPlate(plate string) (*ExitResult, error) {
	norm, err := validatePlateInput(plate)
	if err != nil {
		return nil, err
	}
	return s.exit(byPlate(norm), 0, "", false)
}

// GetTicket returns a ticket with its vehicle for display and reprint.
func (s *Service) GetTicket(ticketID uint) (*models.Ticket, error) {
	if ticketID == 0 {
		return nil, NewValidationError("ticket id is required")
	}
	ticket, err := repository.NewRepositories(s.db).Ticket.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("ticket not found")
		}
		return nil, NewDataAccessError("loading ticket", err)
	}
	return ticket, nil
}

// ticketResolver locates the ticket an exit request refers to.
type ticketResolver func(repos *repository.Repositories) (*models.Ticket, error)

func byID(ticketID uint) ticketResolver {
	return func(repos *repository.Repositories) (*models.Ticket, error) {
		ticket, err := repos.Ticket.GetByID(ticketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewNotFoundError("ticket not found")
			}
			return nil, NewDataAccessError("loading ticket", err)
		}
		return ticket, nil
	}
}

func byPlate(plate string) ticketResolver {
	return func(repos *repository.Repositories) (*models.Ticket, error) {
		ticket, err := repos.Ticket.GetOpenByPlate(plate)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewNotFoundError("no open ticket for this plate")
			}
			return nil, NewDataAccessError("loading open ticket", err)
		}
		return ticket, nil
	}
}

// exit drives the shared exit state machine. With mutate=false it performs
// the lookup, duration and pricing steps only, leaving the ticket untouched.
func (s *Service) exit(resolve ticketResolver, operatorID uint, paymentMethod string, mutate bool) (*ExitResult, error) {
	var result *ExitResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)

		ticket, err := resolve(repos)
		if err != nil {
			return err
		}
		if !ticket.IsOpen() {
			return NewBusinessError("ticket is already closed")
		}

		now := time.Now()
		duration := int(now.Sub(ticket.EntryDatetime) / time.Minute)
		if duration < 0 {
			duration = 0
		}

		if mutate {
			rows, err := repos.Ticket.Close(ticket.ID, now, duration)
			if err != nil {
				return NewDataAccessError("closing ticket", err)
			}
			if rows == 0 {
				// Someone else closed it between the read and the update.
				return NewBusinessError("ticket is already closed")
			}
			ticket.Status = models.TicketStatusClosed
			ticket.ExitDatetime = &now
			ticket.ParkingDurationMinutes = &duration
			ticket.OpenMarker = nil
		}

		rate, err := repos.Rate.GetActiveForType(ticket.Vehicle.VehicleType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Missing reference data is a configuration fault, not user error.
				return NewDataAccessError(
					fmt.Sprintf("no active rate configured for vehicle type %s", ticket.Vehicle.VehicleType), nil)
			}
			return NewDataAccessError("loading active rate", err)
		}

		charge := ResolveCharge(ticket.TicketType, duration, rate)

		var payment *models.Payment
		if mutate && !charge.IsFree && charge.Amount > 0 {
			payment = &models.Payment{
				TicketID:        ticket.ID,
				OperatorID:      operatorID,
				Amount:          charge.Amount,
				PaymentMethod:   paymentMethod,
				PaymentDatetime: now,
			}
			if err := repos.Payment.Create(payment); err != nil {
				return NewDataAccessError("recording payment", err)
			}
		}

		result = &ExitResult{
			Ticket:          ticket,
			ExitTime:        now,
			DurationMinutes: duration,
			Amount:          charge.Amount,
			IsFree:          charge.IsFree,
			FreeReason:      charge.FreeReason,
			Payment:         payment,
		}
		return nil
	})
	if err != nil {
		return nil, ensureKind(err, "processing exit")
	}
	return result, nil
}

func validatePlateInput(plate string) (string, error) {
	norm := NormalizePlate(plate)
	if norm == "" {
		return "", NewValidationError("license plate is required")
	}
	if len(norm) != 6 {
		return "", NewValidationError("license plate must be exactly 6 characters")
	}
	return norm, nil
}

func validateExitInput(operatorID uint, paymentMethod string) error {
	if operatorID == 0 {
		return NewValidationError("operator id is required")
	}
	if paymentMethod == "" {
		return NewValidationError("payment method is required")
	}
	return nil
}

// ensureKind keeps the error taxonomy intact across the transaction boundary:
// tagged errors pass through unchanged, anything else (driver failures,
// commit errors) becomes a data-access error.
func ensureKind(err error, context string) error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return NewDataAccessError(context, err)
}
