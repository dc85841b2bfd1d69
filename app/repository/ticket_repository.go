package repository

import (
	"time"

	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// folioCounterID is the primary key of the single folio counter row.
const folioCounterID = 1

// ticketRepository implements the TicketRepository interface
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository instance
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// Create inserts a new OPEN ticket. The open marker is set here so the
// (vehicle_id, open_marker) unique index rejects a second open ticket for the
// same vehicle even when two entries race past the HasOpen check.
func (r *ticketRepository) Create(ticket *models.Ticket) error {
	marker := uint8(1)
	ticket.Status = models.TicketStatusOpen
	ticket.OpenMarker = &marker
	if ticket.EntryDatetime.IsZero() {
		ticket.EntryDatetime = time.Now()
	}
	return r.db.Create(ticket).Error
}

// GetByID retrieves a ticket with its vehicle by ticket ID
func (r *ticketRepository) GetByID(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Vehicle").First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByFolio retrieves a ticket with its vehicle by folio
func (r *ticketRepository) GetByFolio(folio string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Vehicle").Where("folio = ?", folio).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetOpenByVehicleID retrieves the open ticket for a vehicle, if any
func (r *ticketRepository) GetOpenByVehicleID(vehicleID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Vehicle").
		Where("vehicle_id = ? AND status = ?", vehicleID, models.TicketStatusOpen).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetOpenByPlate retrieves the open ticket for a license plate, if any
func (r *ticketRepository) GetOpenByPlate(plate string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Vehicle").
		Joins("JOIN vehicles ON vehicles.id = tickets.vehicle_id").
		Where("vehicles.license_plate = ? AND tickets.status = ?", plate, models.TicketStatusOpen).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// HasOpen reports whether the vehicle currently has an open ticket
func (r *ticketRepository) HasOpen(vehicleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Ticket{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, models.TicketStatusOpen).
		Count(&count).Error
	return count > 0, err
}

// NextFolio assigns the next folio number. The counter row is incremented with
// a single UPDATE, which takes a row lock on MySQL (and the write lock on
// SQLite), so the increment-then-read pair is race free inside the caller's
// transaction.
func (r *ticketRepository) NextFolio() (string, error) {
	res := r.db.Model(&models.FolioCounter{}).
		Where("id = ?", folioCounterID).
		Update("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		// Counter row not seeded yet (fresh database).
		if err := r.db.Create(&models.FolioCounter{ID: folioCounterID, Value: 1}).Error; err != nil {
			return "", err
		}
		return models.FormatFolio(1), nil
	}

	var counter models.FolioCounter
	if err := r.db.First(&counter, folioCounterID).Error; err != nil {
		return "", err
	}
	return models.FormatFolio(counter.Value), nil
}

// UpdateQRCode rewrites the scan payload of a ticket
func (r *ticketRepository) UpdateQRCode(id uint, payload string) error {
	res := r.db.Model(&models.Ticket{}).
		Where("id = ?", id).
		Update("qr_code_data", payload)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Close transitions a ticket from OPEN to CLOSED, recording exit time and
// duration and clearing the open marker. The returned affected-row count is 0
// when the ticket does not exist or was already closed, which callers treat as
// a lost double-exit race.
func (r *ticketRepository) Close(id uint, exitTime time.Time, durationMinutes int) (int64, error) {
	res := r.db.Model(&models.Ticket{}).
		Where("id = ? AND status = ?", id, models.TicketStatusOpen).
		Updates(map[string]interface{}{
			"status":                   models.TicketStatusClosed,
			"exit_datetime":            exitTime,
			"parking_duration_minutes": durationMinutes,
			"open_marker":              nil,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ListOpen returns currently open tickets, oldest entry first
func (r *ticketRepository) ListOpen(offset, limit int) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Preload("Vehicle").
		Where("status = ?", models.TicketStatusOpen).
		Order("entry_datetime ASC").Offset(offset).Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

// CountOpen returns the number of vehicles currently inside
func (r *ticketRepository) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ticket{}).
		Where("status = ?", models.TicketStatusOpen).
		Count(&count).Error
	return count, err
}
