package repository

import (
	"time"

	"github.com/SJB-Parking/crudpark/app/models"
	"gorm.io/gorm"
)

// operatorRepository implements the OperatorRepository interface
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository instance
func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

// Create creates a new operator in the database
func (r *operatorRepository) Create(operator *models.Operator) error {
	return r.db.Create(operator).Error
}

// GetByID retrieves an operator by their ID
func (r *operatorRepository) GetByID(id uint) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByEmail retrieves an operator by their email address
func (r *operatorRepository) GetByEmail(email string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.Where("email = ?", email).First(&operator).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// UpdateLastLogin stamps the operator's last successful login time
func (r *operatorRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Operator{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
