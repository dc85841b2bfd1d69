package repository

import (
	"time"

	"github.com/SJB-Parking/crudpark/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record. The receipt reference is generated here
// so every payment carries one even when callers do not set it.
func (r *paymentRepository) Create(payment *models.Payment) error {
	if payment.Reference == "" {
		payment.Reference = uuid.NewString()
	}
	if payment.PaymentDatetime.IsZero() {
		payment.PaymentDatetime = time.Now()
	}
	return r.db.Create(payment).Error
}

// GetByTicketID retrieves the payment recorded for a ticket, if any
func (r *paymentRepository) GetByTicketID(ticketID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("ticket_id = ?", ticketID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// SumForDay returns the total collected amount for the calendar day containing t
func (r *paymentRepository) SumForDay(day time.Time) (float64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var total float64
	err := r.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_datetime >= ? AND payment_datetime < ?", start, end).
		Scan(&total).Error
	return total, err
}
