package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/service"
)

const currentUserKey = "current_user"

// Authenticator resolves Basic credentials to a user once per request and
// stores it on the request context for the handlers behind it.
type Authenticator struct {
	users service.UserService
	realm string
}

func NewAuthenticator(users service.UserService, realm string) *Authenticator {
	return &Authenticator{users: users, realm: realm}
}

func (a *Authenticator) Middleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		email, secret, ok := parseBasicAuth(string(ctx.GetHeader("Authorization")))

		err := apperrors.ErrMissingCredentials
		var user model.User
		if ok {
			user, err = a.users.Authenticate(c, email, secret)
		}

		switch {
		case err == nil:
			hlog.CtxInfof(c, "authenticated %s req=%s", email, RequestID(ctx))
			ctx.Set(currentUserKey, user)
			ctx.Next(c)
			return
		case errors.Is(err, apperrors.ErrMissingCredentials):
			hlog.CtxWarnf(c, "Auth header not found req=%s path=%s", RequestID(ctx), ctx.Path())
		case errors.Is(err, apperrors.ErrUnknownIdentifier):
			hlog.CtxWarnf(c, "User not found for username: %s req=%s", email, RequestID(ctx))
		case errors.Is(err, apperrors.ErrInvalidSecret):
			hlog.CtxWarnf(c, "Authentication failure for username: %s req=%s", email, RequestID(ctx))
		default:
			_ = ctx.Error(err)
			ctx.Abort()
			return
		}

		ctx.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", a.realm))
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, utils.H{"message": "Access Denied"})
	}
}

// CurrentUser returns the identity the Authenticator attached.
func CurrentUser(ctx *app.RequestContext) (model.User, bool) {
	v, ok := ctx.Get(currentUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// parseBasicAuth decodes "Basic base64(identifier:secret)". The scheme is
// case-insensitive; the secret may itself contain colons.
func parseBasicAuth(header string) (identifier, secret string, ok bool) {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}
	identifier, secret, ok = strings.Cut(string(decoded), ":")
	if !ok || identifier == "" {
		return "", "", false
	}
	return identifier, secret, true
}
