package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation matches both the translated gorm error and the raw
// driver message, which is what surfaces when translation is skipped.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
