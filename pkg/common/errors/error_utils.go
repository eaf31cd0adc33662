package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers the store cares about.
const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// WrapGormError turns a raw GORM/driver error into the service taxonomy.
// notFound is returned for gorm.ErrRecordNotFound, since "not found" means a
// different thing per table.
func WrapGormError(rawErr error, notFound error) error {
	if rawErr == nil {
		return nil
	}

	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(rawErr, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	case errors.Is(rawErr, gorm.ErrForeignKeyViolated):
		return ErrUserNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return ErrDuplicateEntry
		case mysqlNoReferencedRow:
			return ErrUserNotFound
		default:
			return fmt.Errorf("%w: %s", ErrDatabaseInternal, mysqlErr.Message)
		}
	}

	return fmt.Errorf("%w: %w", ErrDatabaseInternal, rawErr)
}

// IsDuplicateError reports a unique-constraint violation, translated or not.
func IsDuplicateError(err error) bool {
	if errors.Is(err, ErrDuplicateEntry) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// IsNotFound reports either store-level miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrCourseNotFound)
}
