package models

import (
	"fmt"
	"time"
)

const (
	TicketTypeGuest   = "Guest"
	TicketTypeMonthly = "Monthly"

	TicketStatusOpen   = "OPEN"
	TicketStatusClosed = "CLOSED"

	// FolioPrefix and FolioFormat define the human-readable ticket sequence
	// ("TKT000042"). Folios are assigned once, strictly increasing, never reused.
	FolioPrefix = "TKT"
	FolioFormat = "TKT%06d"
)

// Ticket is one parking session, from entry to exit. Rows are append-only: a
// ticket is created OPEN and transitions exactly once to CLOSED.
//
// OpenMarker is 1 while the ticket is OPEN and NULL once closed, so the unique
// index on (vehicle_id, open_marker) lets the database reject a second open
// ticket for the same vehicle even when two entries race.
type Ticket struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Folio                  string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"folio"`
	VehicleID              uint       `gorm:"not null;index;uniqueIndex:ux_tickets_vehicle_open,priority:1" json:"vehicle_id"`
	Vehicle                Vehicle    `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	OperatorID             uint       `gorm:"not null;index" json:"operator_id"`
	SubscriptionID         *uint      `gorm:"default:null" json:"subscription_id,omitempty"`
	EntryDatetime          time.Time  `gorm:"not null" json:"entry_datetime"`
	ExitDatetime           *time.Time `gorm:"default:null" json:"exit_datetime,omitempty"`
	TicketType             string     `gorm:"type:varchar(10);not null" json:"ticket_type"`
	Status                 string     `gorm:"type:varchar(10);not null;index" json:"status"`
	ParkingDurationMinutes *int       `gorm:"default:null" json:"parking_duration_minutes,omitempty"`
	QRCodeData             string     `gorm:"type:varchar(255)" json:"qr_code_data"`
	OpenMarker             *uint8     `gorm:"uniqueIndex:ux_tickets_vehicle_open,priority:2" json:"-"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// FormatFolio renders a folio number in the fixed zero-padded shape.
func FormatFolio(n uint64) string {
	return fmt.Sprintf(FolioFormat, n)
}

// IsOpen reports whether the ticket still represents an active stay.
func (t *Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}

// FolioCounter holds the last assigned folio number. There is exactly one row;
// folio assignment increments it inside the entry transaction, so two
// concurrent entries serialize on the row and can never be handed the same
// folio.
type FolioCounter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     uint64    `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
