package models

import "time"

// Rate is the billing policy for one vehicle type at a point in time. The most
// recently effective active rate per type wins; rates referenced by closed
// tickets are never recalculated.
type Rate struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(100);not null" json:"name"`
	VehicleType        string    `gorm:"type:varchar(20);not null;index:idx_rates_type_active,priority:1" json:"vehicle_type" validate:"oneof=Car Motorcycle"`
	HourlyRate         float64   `gorm:"type:decimal(10,2);not null" json:"hourly_rate" validate:"gte=0"`
	FractionRate       float64   `gorm:"type:decimal(10,2);not null" json:"fraction_rate" validate:"gte=0"`
	DailyCap           *float64  `gorm:"type:decimal(10,2);default:null" json:"daily_cap,omitempty"`
	GracePeriodMinutes int       `gorm:"not null;default:30" json:"grace_period_minutes" validate:"gte=0"`
	EffectiveFrom      time.Time `gorm:"not null;index" json:"effective_from"`
	IsActive           bool      `gorm:"not null;default:true;index:idx_rates_type_active,priority:2" json:"is_active"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
