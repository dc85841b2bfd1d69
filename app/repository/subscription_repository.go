package repository

import (
	"time"

	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindActiveIDForVehicle returns the id of an active subscription covering the
// vehicle at the given time, or nil when the vehicle is not covered. When
// several overlapping subscriptions cover one vehicle the lowest id wins; the
// choice is arbitrary but deterministic.
func (r *subscriptionRepository) FindActiveIDForVehicle(vehicleID uint, at time.Time) (*uint, error) {
	var id uint
	err := r.db.Model(&models.MonthlySubscription{}).
		Select("monthly_subscriptions.id").
		Joins("JOIN subscription_vehicles sv ON sv.monthly_subscription_id = monthly_subscriptions.id").
		Where("sv.vehicle_id = ? AND monthly_subscriptions.is_active = ?", vehicleID, true).
		Where("monthly_subscriptions.start_date <= ? AND monthly_subscriptions.end_date >= ?", at, at).
		Order("monthly_subscriptions.id ASC").
		Limit(1).
		Scan(&id).Error
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}
	return &id, nil
}

// GetByID retrieves a subscription by its ID
func (r *subscriptionRepository) GetByID(id uint) (*models.MonthlySubscription, error) {
	var sub models.MonthlySubscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
