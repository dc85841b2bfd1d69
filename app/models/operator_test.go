package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOperator(t *testing.T) {
	op, err := CreateOperator("Maria Lopez", "maria@crudpark.test", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "Maria Lopez", op.FullName)
	assert.Equal(t, STATUS_ACTIVE, op.Status)
	assert.True(t, op.IsActive())
	assert.NotEqual(t, "s3cret-pass", op.PasswordHash)
	assert.True(t, op.CheckPassword("s3cret-pass"))
	assert.False(t, op.CheckPassword("wrong"))
}

func TestCreateOperatorValidation(t *testing.T) {
	_, err := CreateOperator("Maria Lopez", "not-an-email", "s3cret-pass")
	assert.Error(t, err)

	_, err = CreateOperator("ML", "maria@crudpark.test", "s3cret-pass")
	assert.Error(t, err)
}

func TestOperatorSetPassword(t *testing.T) {
	op, err := CreateOperator("Maria Lopez", "maria@crudpark.test", "old-pass")
	require.NoError(t, err)

	require.NoError(t, op.SetPassword("new-pass"))
	assert.False(t, op.CheckPassword("old-pass"))
	assert.True(t, op.CheckPassword("new-pass"))
}

func TestOperatorIsActive(t *testing.T) {
	op := &Operator{Status: STATUS_INACTIVE}
	assert.False(t, op.IsActive())
}
