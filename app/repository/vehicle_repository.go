package repository

import (
	"errors"

	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// vehicleRepository implements the VehicleRepository interface
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle in the database
func (r *vehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// GetByID retrieves a vehicle by its ID
func (r *vehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetByPlate retrieves a vehicle by its license plate
func (r *vehicleRepository) GetByPlate(plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Where("license_plate = ?", plate).First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindOrCreate returns the vehicle for the plate, creating it on first entry.
// A concurrent insert of the same plate trips the unique index; in that case
// the row now exists, so the lookup is retried instead of failing the entry.
func (r *vehicleRepository) FindOrCreate(plate, vehicleType string) (*models.Vehicle, error) {
	vehicle, err := r.GetByPlate(plate)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &models.Vehicle{LicensePlate: plate, VehicleType: vehicleType}
	if err := r.db.Create(created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByPlate(plate)
		}
		return nil, err
	}
	return created, nil
}

// Count returns the total number of known vehicles
func (r *vehicleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Count(&count).Error
	return count, err
}
