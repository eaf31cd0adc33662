// Package validate checks request payloads and reports every violated field,
// in declaration order, as one client-facing message each.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
)

// MsgInvalidJSON is reported for a body that does not decode.
const MsgInvalidJSON = "Request body must be valid JSON"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct returns an *apperrors.ValidationError listing every violation, or nil.
func Struct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return apperrors.NewValidationError(messages...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please provide a value for %q", fe.Field())
	case "email":
		return fmt.Sprintf("Please provide a valid email address for %q", fe.Field())
	case "min":
		return fmt.Sprintf("%q must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}
