package parking

import (
	"fmt"

	"github.com/SJB-Parking/crudpark/app/models"
)

// Charge is the priced outcome of an exit before any payment is recorded.
type Charge struct {
	Amount     float64 `json:"amount"`
	IsFree     bool    `json:"is_free"`
	FreeReason string  `json:"free_reason,omitempty"`
}

// CalculateAmount prices a chargeable stay against a rate. Grace minutes are
// subtracted first; full hours bill at the hourly rate and a started partial
// hour costs one flat fraction charge, never a per-minute proration; the daily
// cap clamps the total when configured.
func CalculateAmount(durationMinutes int, rate *models.Rate) float64 {
	chargeable := durationMinutes - rate.GracePeriodMinutes
	if chargeable <= 0 {
		return 0
	}

	hours := chargeable / 60
	remainder := chargeable % 60

	amount := float64(hours) * rate.HourlyRate
	if remainder > 0 {
		amount += rate.FractionRate
	}

	if rate.DailyCap != nil && amount > *rate.DailyCap {
		amount = *rate.DailyCap
	}

	return amount
}

// ResolveCharge applies the free-exit precedence and prices the stay:
// a Monthly ticket is always free, then the grace period (boundary inclusive)
// applies, otherwise the stay is charged. A computed amount of zero stays a
// chargeable outcome with amount 0 and is not reclassified as free.
func ResolveCharge(ticketType string, durationMinutes int, rate *models.Rate) Charge {
	if ticketType == models.TicketTypeMonthly {
		return Charge{IsFree: true, FreeReason: "Monthly Subscription"}
	}
	if durationMinutes <= rate.GracePeriodMinutes {
		return Charge{
			IsFree:     true,
			FreeReason: fmt.Sprintf("Grace Period (first %d minutes)", rate.GracePeriodMinutes),
		}
	}
	return Charge{Amount: CalculateAmount(durationMinutes, rate)}
}
