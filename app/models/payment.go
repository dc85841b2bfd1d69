package models

import "time"

const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
)

// Payment is the append-only record of one completed charge. Free exits and
// zero-amount exits never produce a payment row.
type Payment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Reference       string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	TicketID        uint      `gorm:"not null;index" json:"ticket_id"`
	Ticket          Ticket    `gorm:"foreignKey:TicketID" json:"ticket,omitempty"`
	OperatorID      uint      `gorm:"not null;index" json:"operator_id"`
	Amount          float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentDatetime time.Time `gorm:"not null" json:"payment_datetime"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}
