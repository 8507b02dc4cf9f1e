package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes reported by PostgreSQL; the message fragments cover sqlite in tests.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return errorMentions(err, "foreign key", sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return errorMentions(err, "null value", "not null", sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return errorMentions(err, "check constraint", sqlStateCheckViolation)
}

func errorMentions(err error, fragments ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}

	return false
}
