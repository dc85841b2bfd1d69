package models

import "time"

const (
	VehicleTypeCar        = "Car"
	VehicleTypeMotorcycle = "Motorcycle"
)

// Vehicle is a known license plate. Rows are created on first entry and never
// deleted; the type is fixed once the plate has been seen.
type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LicensePlate string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"license_plate" validate:"required,len=6"`
	VehicleType  string    `gorm:"type:varchar(20);not null" json:"vehicle_type" validate:"oneof=Car Motorcycle"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
