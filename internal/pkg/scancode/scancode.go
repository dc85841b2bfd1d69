// Package scancode builds and parses the payload printed on tickets as a QR
// code. The shape "TICKET:000123|PLATE:ABC123|DATE:1699999999" is consumed by
// the gate scanners and must stay stable.
package scancode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ticketField = "TICKET"
	plateField  = "PLATE"
	dateField   = "DATE"
)

// ErrMalformed is returned when a scanned payload does not match the expected shape.
var ErrMalformed = errors.New("malformed scan code payload")

// Payload is the decoded content of a ticket scan code.
type Payload struct {
	TicketID  uint
	Plate     string
	EntryTime time.Time
}

// Build encodes the ticket id, plate and entry time into the wire shape. The
// ticket id is zero-padded to six digits like the folio.
func Build(ticketID uint, plate string, entryTime time.Time) string {
	return fmt.Sprintf("%s:%06d|%s:%s|%s:%d",
		ticketField, ticketID,
		plateField, strings.ToUpper(strings.TrimSpace(plate)),
		dateField, entryTime.Unix(),
	)
}

// Parse decodes a scanned payload. Field order is fixed; any missing or
// unparsable field reports ErrMalformed.
func Parse(raw string) (*Payload, error) {
	parts := strings.Split(strings.TrimSpace(raw), "|")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	ticketPart, ok := fieldValue(parts[0], ticketField)
	if !ok {
		return nil, ErrMalformed
	}
	platePart, ok := fieldValue(parts[1], plateField)
	if !ok || platePart == "" {
		return nil, ErrMalformed
	}
	datePart, ok := fieldValue(parts[2], dateField)
	if !ok {
		return nil, ErrMalformed
	}

	ticketID, err := strconv.ParseUint(ticketPart, 10, 32)
	if err != nil || ticketID == 0 {
		return nil, ErrMalformed
	}
	epoch, err := strconv.ParseInt(datePart, 10, 64)
	if err != nil {
		return nil, ErrMalformed
	}

	return &Payload{
		TicketID:  uint(ticketID),
		Plate:     platePart,
		EntryTime: time.Unix(epoch, 0),
	}, nil
}

func fieldValue(part, name string) (string, bool) {
	prefix := name + ":"
	if !strings.HasPrefix(part, prefix) {
		return "", false
	}
	return strings.TrimPrefix(part, prefix), true
}
