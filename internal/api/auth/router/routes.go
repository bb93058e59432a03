// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập, profile, health.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "cine_catalog/internal/api/auth/handler"
	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/api/middleware"
	apirouter "cine_catalog/internal/api/router"
)

// Register đăng ký tất cả route auth (auth, health) lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(api); err != nil {
		return err
	}
	if err := registerAuthRoutes(api); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	protect := middleware.Protect()
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/profile", []fiber.Handler{protect}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PUT", "/profile", []fiber.Handler{protect}, userHandler.HandleUpdateProfile)
	return nil
}
