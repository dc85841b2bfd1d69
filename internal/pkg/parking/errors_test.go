package parking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, KindBusiness, KindOf(NewBusinessError("no")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("gone")))
	assert.Equal(t, KindDataAccess, KindOf(NewDataAccessError("down", nil)))

	// Untagged errors are treated as operational faults.
	assert.Equal(t, KindDataAccess, KindOf(errors.New("driver hiccup")))

	assert.True(t, IsValidation(NewValidationError("bad")))
	assert.True(t, IsBusiness(NewBusinessError("no")))
	assert.True(t, IsNotFound(NewNotFoundError("gone")))
	assert.True(t, IsDataAccess(errors.New("anything")))
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDataAccessError("loading ticket", cause)

	assert.Equal(t, "loading ticket: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	// The kind survives another layer of wrapping.
	wrapped := fmt.Errorf("processing exit: %w", err)
	assert.Equal(t, KindDataAccess, KindOf(wrapped))

	plain := NewBusinessError("ticket is already closed")
	assert.Equal(t, "ticket is already closed", plain.Error())
	assert.Nil(t, plain.Unwrap())
}
