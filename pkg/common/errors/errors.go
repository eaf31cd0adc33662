package errors

import (
	"errors"
	"strings"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

var (
	rawErrUserNotFound     = errors.New("user not found")
	rawErrCourseNotFound   = errors.New("course not found")
	rawErrDuplicateEntry   = errors.New("email address already exists")
	rawErrForbidden        = errors.New("not the correct user")
	rawErrDatabaseInternal = errors.New("database internal error")
)

// Store and guard errors, wrapped as Hertz errors so they can be attached to
// the request context. Public ones may be shown to clients.
var (
	ErrUserNotFound     = hzte.New(rawErrUserNotFound, hzte.ErrorTypePublic, nil)
	ErrCourseNotFound   = hzte.New(rawErrCourseNotFound, hzte.ErrorTypePublic, nil)
	ErrDuplicateEntry   = hzte.New(rawErrDuplicateEntry, hzte.ErrorTypePublic, nil)
	ErrForbidden        = hzte.New(rawErrForbidden, hzte.ErrorTypePublic, nil)
	ErrDatabaseInternal = hzte.New(rawErrDatabaseInternal, hzte.ErrorTypePrivate, nil)
)

// Authentication failures. Clients only ever see a generic "Access Denied";
// the kinds stay distinct for server-side logs.
var (
	ErrMissingCredentials = errors.New("auth header not found")
	ErrUnknownIdentifier  = errors.New("user not found for username")
	ErrInvalidSecret      = errors.New("authentication failure for username")
)

// ValidationError is an ordered list of client-facing field messages.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError returns nil when there is nothing to report.
func NewValidationError(messages ...string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// IsValidation extracts the message list of a ValidationError anywhere in err's chain.
func IsValidation(err error) ([]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages, true
	}
	return nil, false
}
