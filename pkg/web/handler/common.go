package handler

import (
	"net/http"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/validate"
)

// bindAndValidate decodes a JSON body into req and validates it. An empty
// body is an empty object, so it fails field validation rather than decoding.
func bindAndValidate(c *app.RequestContext, req interface{}) error {
	if len(c.Request.Body()) > 0 {
		if err := c.BindJSON(req); err != nil {
			return apperrors.NewValidationError(validate.MsgInvalidJSON)
		}
	}
	return validate.Struct(req)
}

func respondValidation(c *app.RequestContext, messages []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, utils.H{"errors": messages})
}

func respondCourseNotFound(c *app.RequestContext) {
	c.AbortWithStatusJSON(http.StatusNotFound, utils.H{"error": "Course not found"})
}

func respondForbidden(c *app.RequestContext) {
	c.AbortWithStatusJSON(http.StatusForbidden, utils.H{"error": "Not the correct user"})
}

// courseID parses the :id path parameter; anything but a positive integer
// cannot name a course.
func courseID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
