package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/google/uuid"
	"github.com/hertz-contrib/cors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/config"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware keeps an incoming X-Request-ID or mints one.
func RequestIDMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := string(ctx.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next(c)
	}
}

// RequestID returns the id assigned by RequestIDMiddleware.
func RequestID(ctx *app.RequestContext) string {
	return ctx.GetString(requestIDKey)
}

// LoggerMiddleware writes one access log line per request.
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		latency := time.Since(start)

		hlog.CtxInfof(c, "| %3d | %13v | %15s | %-7s | %s | req=%s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			RequestID(ctx),
		)
	}
}

// RecoveryMiddleware turns a panic into a 500; stack details only outside production.
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())

				hlog.CtxErrorf(c, "[PANIC RECOVERED] req=%s %v\n%s", RequestID(ctx), err, stack)

				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(http.StatusInternalServerError, utils.H{
						"message": "internal server error",
					})
				} else {
					ctx.AbortWithStatusJSON(http.StatusInternalServerError, utils.H{
						"message": "internal server error",
						"error":   fmt.Sprintf("%v", err),
						"stack":   strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// FaultMiddleware answers for errors handlers attached with ctx.Error instead
// of handling them: store failures and anything else unexpected.
func FaultMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.Next(c)

		last := ctx.Errors.Last()
		if last == nil {
			return
		}

		hlog.CtxErrorf(c, "[FAULT] req=%s path=%s: %v", RequestID(ctx), ctx.Path(), last)

		status, body := http.StatusInternalServerError, utils.H{"message": "internal server error"}
		if errors.Is(last, context.DeadlineExceeded) {
			status, body = http.StatusServiceUnavailable, utils.H{"message": "service unavailable"}
		}
		if !cfg.IsProd() {
			body["error"] = last.Error()
		}
		ctx.AbortWithStatusJSON(status, body)
	}
}

func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
			AllowOriginFunc: func(origin string) bool {
				for _, domain := range corsConfig.TrustedDomains {
					if strings.HasSuffix(origin, domain) {
						return true
					}
				}
				return false
			},
		},
	)
}

// TimeoutMiddleware puts a deadline on the request context; the store honours it.
func TimeoutMiddleware(seconds int) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if seconds <= 0 {
			ctx.Next(c)
			return
		}

		timeoutCtx, cancel := context.WithTimeout(c, time.Duration(seconds)*time.Second)
		defer cancel()

		ctx.Next(timeoutCtx)

		if errors.Is(timeoutCtx.Err(), context.DeadlineExceeded) {
			hlog.CtxWarnf(c, "request timeout path=%s", ctx.Path())
		}
	}
}

// SecurityCheckMiddleware rejects oversized bodies, unlisted methods and
// script/SQL fragments in query or form arguments.
func SecurityCheckMiddleware(security config.SecurityConfig) app.HandlerFunc {
	xssRegex := regexp.MustCompile(`(?i)<script.*?>|<\/script>|alert\(|onerror=`)
	sqlInjectRegex := regexp.MustCompile(`(?i)\b(union|select|drop|delete|insert)\b`)

	allowed := make(map[string]bool, len(security.AllowedMethods))
	for _, m := range security.AllowedMethods {
		allowed[strings.ToUpper(m)] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		if security.MaxBodySize > 0 && int64(ctx.Request.Header.ContentLength()) > security.MaxBodySize {
			securityResponse(c, ctx, 413001, "request body exceeds max size", http.StatusRequestEntityTooLarge)
			return
		}

		if hasMaliciousContent(ctx, xssRegex, sqlInjectRegex) {
			securityResponse(c, ctx, 422001, "request contains invalid characters", http.StatusUnprocessableEntity)
			return
		}

		if len(allowed) > 0 && !allowed[string(ctx.Method())] {
			securityResponse(c, ctx, 405001, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx.Next(c)
	}
}

func hasMaliciousContent(ctx *app.RequestContext, xss *regexp.Regexp, sql *regexp.Regexp) bool {
	var found int32

	check := func(data []byte) bool {
		return xss.Match(data) || sql.Match(data)
	}

	visitor := func(key, value []byte) {
		if atomic.LoadInt32(&found) == 1 {
			return
		}
		if check(key) || check(value) {
			atomic.StoreInt32(&found, 1)
		}
	}

	ctx.QueryArgs().VisitAll(visitor)
	if atomic.LoadInt32(&found) == 1 {
		return true
	}

	ctx.PostArgs().VisitAll(visitor)
	return atomic.LoadInt32(&found) == 1
}

func securityResponse(c context.Context, ctx *app.RequestContext, code int, msg string, status int) {
	hlog.CtxWarnf(c, "SecurityAlert[code=%d] req=%s: %s", code, RequestID(ctx), msg)
	ctx.AbortWithStatusJSON(status, utils.H{
		"code":    code,
		"message": msg,
	})
}
