// Package router đăng ký các route thuộc domain admin.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adminhdl "cine_catalog/internal/api/admin/handler"
	"cine_catalog/internal/api/middleware"
	apirouter "cine_catalog/internal/api/router"
)

// Register đăng ký các route admin lên /api. Tất cả đều yêu cầu vai trò admin.
func Register(api fiber.Router, r *apirouter.Router) error {
	adminHandler, err := adminhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}

	protect := middleware.Protect()
	requireAdmin := middleware.RequireAdmin()
	chain := []fiber.Handler{protect, requireAdmin}
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "GET", "/stats", chain, adminHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "GET", "/reviews/pending", chain, adminHandler.HandlePendingReviews)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "PUT", "/reviews/:id/approve", chain, adminHandler.HandleApproveReview)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "DELETE", "/reviews/:id", chain, adminHandler.HandleDeleteReview)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "GET", "/users", chain, adminHandler.HandleListUsers)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "DELETE", "/users/:id", chain, adminHandler.HandleDeleteUser)
	return nil
}
