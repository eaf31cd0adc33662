package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/config"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/password"
	coursedao "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/repository/dao/impl"
	courseservice "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/service"
	userdao "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/repository/dao/impl"
	userservice "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/service"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/handler"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/middleware"
	"gorm.io/gorm"
)

// RegisterAPIs wires stores, services and handlers over db and registers every route.
func RegisterAPIs(h *server.Hertz, cfg *config.Config, db *gorm.DB) {
	users := userservice.NewUserService(
		userdao.NewGormUserRepository(db),
		password.NewBcryptHasher(cfg.Middleware.Security.BcryptCost),
	)
	courses := courseservice.NewCourseService(coursedao.NewGormCourseRepository(db))

	healthHandler := handler.NewHealthCheckHandler(db)
	userHandler := handler.NewUserHandler(users)
	courseHandler := handler.NewCourseHandler(courses)
	authenticate := middleware.NewAuthenticator(users, cfg.Middleware.Auth.Realm).Middleware()

	// global middleware, outermost first
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.FaultMiddleware(cfg),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.TimeoutMiddleware(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
	)

	h.GET("/health", healthHandler.AdvancedHealthCheck)

	h.GET("/users", authenticate, userHandler.CurrentUser)
	h.POST("/users", userHandler.Register)

	h.GET("/courses", courseHandler.List)
	h.GET("/courses/:id", courseHandler.Get)
	// validation runs before authentication
	h.POST("/courses", courseHandler.BindCourse, authenticate, courseHandler.Create)
	h.PUT("/courses/:id", courseHandler.BindCourse, authenticate, courseHandler.Update)
	h.DELETE("/courses/:id", authenticate, courseHandler.Delete)
}
