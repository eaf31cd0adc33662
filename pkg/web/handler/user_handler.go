package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/service"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/middleware"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/model"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CurrentUser returns the authenticated user. Mounted behind the Authenticator.
func (h *UserHandler) CurrentUser(ctx context.Context, c *app.RequestContext) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.H{"message": "Access Denied"})
		return
	}
	c.JSON(http.StatusOK, model.NewCurrentUserRes(user))
}

// Register creates a user and answers 201 with Location "/".
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req model.RegisterReq
	if err := bindAndValidate(c, &req); err != nil {
		if msgs, ok := apperrors.IsValidation(err); ok {
			respondValidation(c, msgs)
			return
		}
		_ = c.Error(err)
		return
	}

	user, err := h.users.Register(ctx, req.FirstName, req.LastName, req.EmailAddress, req.Password)
	if err != nil {
		if msgs, ok := apperrors.IsValidation(err); ok {
			respondValidation(c, msgs)
			return
		}
		_ = c.Error(err)
		return
	}

	hlog.CtxInfof(ctx, "registered user id=%d", user.ID)
	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}
