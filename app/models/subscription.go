package models

import "time"

// MonthlySubscription grants free parking to its linked vehicles while active
// and inside [StartDate, EndDate]. This core only reads subscriptions.
type MonthlySubscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HolderName string    `gorm:"type:varchar(150)" json:"holder_name"`
	IsActive   bool      `gorm:"not null;default:true;index" json:"is_active"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	Vehicles   []Vehicle `gorm:"many2many:subscription_vehicles" json:"vehicles,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SubscriptionVehicle links a subscription to a covered vehicle.
type SubscriptionVehicle struct {
	MonthlySubscriptionID uint `gorm:"primaryKey" json:"subscription_id"`
	VehicleID             uint `gorm:"primaryKey;index" json:"vehicle_id"`
}

// CoversAt reports whether the subscription is usable at the given time.
func (s *MonthlySubscription) CoversAt(t time.Time) bool {
	return s.IsActive && !t.Before(s.StartDate) && !t.After(s.EndDate)
}
