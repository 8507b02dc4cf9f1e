package postgres

import (
	"testing"

	"contacts/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert or update on table "addresses" violates foreign key constraint (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New("SQLSTATE 23514")))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}
