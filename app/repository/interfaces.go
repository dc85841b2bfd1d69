package repository

import (
	"time"

	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// VehicleRepository defines the interface for vehicle-related database operations
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id uint) (*models.Vehicle, error)
	GetByPlate(plate string) (*models.Vehicle, error)
	FindOrCreate(plate, vehicleType string) (*models.Vehicle, error)
	Count() (int64, error)
}

// TicketRepository defines the interface for ticket-related database operations
type TicketRepository interface {
	Create(ticket *models.Ticket) error
	GetByID(id uint) (*models.Ticket, error)
	GetByFolio(folio string) (*models.Ticket, error)
	GetOpenByVehicleID(vehicleID uint) (*models.Ticket, error)
	GetOpenByPlate(plate string) (*models.Ticket, error)
	HasOpen(vehicleID uint) (bool, error)
	NextFolio() (string, error)
	UpdateQRCode(id uint, payload string) error
	Close(id uint, exitTime time.Time, durationMinutes int) (int64, error)
	ListOpen(offset, limit int) ([]models.Ticket, error)
	CountOpen() (int64, error)
}

// RateRepository defines the interface for rate-related database operations
type RateRepository interface {
	Create(rate *models.Rate) error
	GetActiveForType(vehicleType string) (*models.Rate, error)
	List() ([]models.Rate, error)
}

// SubscriptionRepository defines the interface for subscription lookups
type SubscriptionRepository interface {
	FindActiveIDForVehicle(vehicleID uint, at time.Time) (*uint, error)
	GetByID(id uint) (*models.MonthlySubscription, error)
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByTicketID(ticketID uint) (*models.Payment, error)
	SumForDay(day time.Time) (float64, error)
}

// OperatorRepository defines the interface for operator-related database operations
type OperatorRepository interface {
	Create(operator *models.Operator) error
	GetByID(id uint) (*models.Operator, error)
	GetByEmail(email string) (*models.Operator, error)
	UpdateLastLogin(id uint, at time.Time) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Vehicle      VehicleRepository
	Ticket       TicketRepository
	Rate         RateRepository
	Subscription SubscriptionRepository
	Payment      PaymentRepository
	Operator     OperatorRepository
}

// NewRepositories creates a new instance of all repositories bound to the
// given handle. Passing a transaction handle scopes every repository call to
// that transaction.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Vehicle:      NewVehicleRepository(db),
		Ticket:       NewTicketRepository(db),
		Rate:         NewRateRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Payment:      NewPaymentRepository(db),
		Operator:     NewOperatorRepository(db),
	}
}
