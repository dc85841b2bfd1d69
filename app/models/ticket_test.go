package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFolio(t *testing.T) {
	assert.Equal(t, "TKT000001", FormatFolio(1))
	assert.Equal(t, "TKT000042", FormatFolio(42))
	assert.Equal(t, "TKT123456", FormatFolio(123456))
	assert.Equal(t, "TKT1234567", FormatFolio(1234567))
}

func TestTicketIsOpen(t *testing.T) {
	assert.True(t, (&Ticket{Status: TicketStatusOpen}).IsOpen())
	assert.False(t, (&Ticket{Status: TicketStatusClosed}).IsOpen())
}

func TestSubscriptionCoversAt(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	sub := &MonthlySubscription{IsActive: true, StartDate: start, EndDate: end}

	assert.True(t, sub.CoversAt(start))
	assert.True(t, sub.CoversAt(end))
	assert.True(t, sub.CoversAt(start.Add(15*24*time.Hour)))
	assert.False(t, sub.CoversAt(start.Add(-time.Second)))
	assert.False(t, sub.CoversAt(end.Add(time.Second)))

	sub.IsActive = false
	assert.False(t, sub.CoversAt(start.Add(15*24*time.Hour)))
}
