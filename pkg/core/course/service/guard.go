package service

import (
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	usermodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
)

// Authorize lets identity mutate course only if it owns it.
func Authorize(identity usermodel.User, course model.Course) error {
	if identity.ID == 0 || identity.ID != course.UserID {
		return apperrors.ErrForbidden
	}
	return nil
}
