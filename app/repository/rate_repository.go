package repository

import (
	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// rateRepository implements the RateRepository interface
type rateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new rate repository instance
func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

// Create creates a new rate in the database
func (r *rateRepository) Create(rate *models.Rate) error {
	return r.db.Create(rate).Error
}

// GetActiveForType returns the currently active rate for a vehicle type: the
// active row with the most recent effective_from wins. A missing rate is a
// configuration fault for callers that need to price an exit, so the
// gorm.ErrRecordNotFound is passed through untranslated.
func (r *rateRepository) GetActiveForType(vehicleType string) (*models.Rate, error) {
	var rate models.Rate
	err := r.db.Where("is_active = ? AND vehicle_type = ?", true, vehicleType).
		Order("effective_from DESC").
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// List returns all rates, newest effective first
func (r *rateRepository) List() ([]models.Rate, error) {
	var rates []models.Rate
	err := r.db.Order("effective_from DESC").Find(&rates).Error
	return rates, err
}
