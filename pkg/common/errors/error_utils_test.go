package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapGormError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrCourseNotFound},
		{"wrapped record not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), ErrCourseNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, ErrDuplicateEntry},
		{"translated foreign key", gorm.ErrForeignKeyViolated, ErrUserNotFound},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, ErrDuplicateEntry},
		{"mysql foreign key", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update"}, ErrUserNotFound},
		{"mysql other", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, ErrDatabaseInternal},
		{"unknown", errors.New("connection reset"), ErrDatabaseInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapGormError(tc.in, ErrCourseNotFound)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestWrapGormError_KeepsDetail(t *testing.T) {
	err := WrapGormError(&mysql.MySQLError{Number: 1146, Message: "Table 'courses' doesn't exist"}, ErrCourseNotFound)
	assert.Contains(t, err.Error(), "Table 'courses' doesn't exist")
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicateEntry))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsDuplicateError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsDuplicateError(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicateError(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, NewValidationError())

	err := fmt.Errorf("create user: %w", NewValidationError("a", "b"))
	msgs, ok := IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, msgs)

	_, ok = IsValidation(ErrForbidden)
	assert.False(t, ok)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", ErrCourseNotFound)))
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.False(t, IsNotFound(ErrForbidden))
}

func TestWrapGormError_KeepsCause(t *testing.T) {
	err := WrapGormError(context.DeadlineExceeded, ErrCourseNotFound)
	assert.ErrorIs(t, err, ErrDatabaseInternal)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
