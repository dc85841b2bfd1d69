package parking

import (
	"regexp"
	"strings"

	"github.com/SJB-Parking/crudpark/app/models"
)

var (
	carPattern        = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)
	motorcyclePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{2}[A-Z]$`)
)

// NormalizePlate trims and upper-cases a raw license plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ClassifyPlate maps a license plate to a vehicle type. Cars are 3 letters
// followed by 3 digits, motorcycles 3 letters, 2 digits and a final letter.
// An empty result means the plate matches neither pattern; that is a business
// ruling for the caller, not an error.
func ClassifyPlate(plate string) string {
	plate = NormalizePlate(plate)

	switch {
	case carPattern.MatchString(plate):
		return models.VehicleTypeCar
	case motorcyclePattern.MatchString(plate):
		return models.VehicleTypeMotorcycle
	default:
		return ""
	}
}
