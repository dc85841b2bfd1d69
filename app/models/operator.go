package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
)

// Operator is a booth employee who records entries and exits. Operators
// authenticate with email + bcrypt password; their id is stamped onto every
// ticket and payment they touch.
type Operator struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FullName     string     `gorm:"type:varchar(150);not null" json:"full_name" validate:"required,min=3,max=150"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"email" validate:"required,email,min=5,max=200"`
	PasswordHash string     `gorm:"type:text;not null" json:"-" validate:"required"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active'" json:"status" validate:"oneof=active inactive"`
	LastLoginAt  *time.Time `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (o *Operator) Validate() error {
	v := validator.New()

	return v.Struct(o)
}

// CreateOperator builds a validated operator with a hashed password.
func CreateOperator(fullName, email, password string) (*Operator, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	o := &Operator{
		FullName:     fullName,
		Email:        email,
		PasswordHash: pw,
		Status:       STATUS_ACTIVE,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// IsActive reports whether the operator account may log in.
func (o *Operator) IsActive() bool {
	return o.Status == STATUS_ACTIVE
}

// CheckPassword verifies the provided password against the stored hash.
func (o *Operator) CheckPassword(password string) bool {
	return CheckPasswordHash(password, o.PasswordHash)
}

// SetPassword hashes and sets a new password for the operator.
func (o *Operator) SetPassword(password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	o.PasswordHash = hashed
	return nil
}
