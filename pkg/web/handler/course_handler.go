package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/service"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/middleware"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/model"
)

const courseReqKey = "course_req"

type CourseHandler struct {
	courses service.CourseService
}

func NewCourseHandler(courses service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// BindCourse validates a course payload ahead of authentication, so malformed
// requests never reach the credential store.
func (h *CourseHandler) BindCourse(ctx context.Context, c *app.RequestContext) {
	var req model.CourseReq
	if err := bindAndValidate(c, &req); err != nil {
		if msgs, ok := apperrors.IsValidation(err); ok {
			respondValidation(c, msgs)
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.Set(courseReqKey, req)
	c.Next(ctx)
}

func boundCourse(c *app.RequestContext) (model.CourseReq, error) {
	v, ok := c.Get(courseReqKey)
	if !ok {
		return model.CourseReq{}, errors.New("course payload not bound")
	}
	return v.(model.CourseReq), nil
}

func (h *CourseHandler) List(ctx context.Context, c *app.RequestContext) {
	courses, err := h.courses.List(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewCourseListRes(courses))
}

func (h *CourseHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, ok := courseID(c)
	if !ok {
		respondCourseNotFound(c)
		return
	}

	course, err := h.courses.Get(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondCourseNotFound(c)
	case err != nil:
		_ = c.Error(err)
	default:
		c.JSON(http.StatusOK, model.NewCourseRes(course))
	}
}

// Create answers 201 with Location /courses/<id>; the caller becomes the owner.
func (h *CourseHandler) Create(ctx context.Context, c *app.RequestContext) {
	identity, _ := middleware.CurrentUser(c)
	req, err := boundCourse(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	course, err := h.courses.Create(ctx, identity, req.Changes())
	if err != nil {
		_ = c.Error(err)
		return
	}

	hlog.CtxInfof(ctx, "course id=%d created by user id=%d", course.ID, identity.ID)
	c.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

func (h *CourseHandler) Update(ctx context.Context, c *app.RequestContext) {
	identity, _ := middleware.CurrentUser(c)
	req, err := boundCourse(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, ok := courseID(c)
	if !ok {
		respondCourseNotFound(c)
		return
	}

	h.respondMutation(ctx, c, identity.ID, id, h.courses.Update(ctx, identity, id, req.Changes()))
}

func (h *CourseHandler) Delete(ctx context.Context, c *app.RequestContext) {
	identity, _ := middleware.CurrentUser(c)
	id, ok := courseID(c)
	if !ok {
		respondCourseNotFound(c)
		return
	}

	h.respondMutation(ctx, c, identity.ID, id, h.courses.Delete(ctx, identity, id))
}

func (h *CourseHandler) respondMutation(ctx context.Context, c *app.RequestContext, userID, courseID int64, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondCourseNotFound(c)
	case errors.Is(err, apperrors.ErrForbidden):
		hlog.CtxWarnf(ctx, "user id=%d is not the owner of course id=%d", userID, courseID)
		respondForbidden(c)
	default:
		_ = c.Error(err)
	}
}
