package parking

import (
	"errors"
	"fmt"
)

// Kind classifies every error this package returns. The four kinds are
// mutually exclusive and callers are expected to branch on them: validation
// and business errors are recoverable operator mistakes, not-found asks for a
// corrected identifier, data-access is an operational fault.
type Kind string

const (
	KindValidation Kind = "validation"
	KindBusiness   Kind = "business"
	KindNotFound   Kind = "not_found"
	KindDataAccess Kind = "data_access"
)

// Error is the tagged result every parking operation fails with. The wrapped
// cause, when present, is a lower-layer store error; the kind is never
// downgraded while wrapping.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed caller input, detected before any store access.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewBusinessError reports input that violates a domain rule in the current state.
func NewBusinessError(message string) *Error {
	return &Error{Kind: KindBusiness, Message: message}
}

// NewNotFoundError reports a referenced entity that does not exist.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewDataAccessError reports a failing backing store or missing reference data.
func NewDataAccessError(message string, cause error) *Error {
	return &Error{Kind: KindDataAccess, Message: message, Err: cause}
}

// KindOf extracts the kind from an error returned by this package. Errors that
// did not originate here report KindDataAccess, matching the policy that
// unexpected failures are operational faults.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindDataAccess
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsBusiness(err error) bool   { return KindOf(err) == KindBusiness }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsDataAccess(err error) bool { return KindOf(err) == KindDataAccess }
