// Package router đăng ký các route thuộc domain review.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cine_catalog/internal/api/middleware"
	reviewhdl "cine_catalog/internal/api/review/handler"
	apirouter "cine_catalog/internal/api/router"
)

// Register đăng ký các route review lên /api.
// Route public phải đăng ký trước group có middleware.
func Register(api fiber.Router, r *apirouter.Router) error {
	reviewHandler, err := reviewhdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("failed to create review handler: %w", err)
	}

	// Public - danh sách review đã duyệt của một content.
	// Route param 1 segment nên không nuốt /reviews/user/me (2 segment).
	api.Get("/reviews/:contentId", reviewHandler.HandleListByContent)

	protect := middleware.Protect()
	chain := []fiber.Handler{protect}
	apirouter.RegisterRouteWithMiddleware(api, "/reviews", "GET", "/user/me", chain, reviewHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(api, "/reviews", "POST", "/", chain, reviewHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(api, "/reviews", "PUT", "/:id", chain, reviewHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(api, "/reviews", "DELETE", "/:id", chain, reviewHandler.HandleDelete)
	return nil
}
