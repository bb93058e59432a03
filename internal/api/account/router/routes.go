// Package router đăng ký các route thuộc domain account: watchlist, favorites, progress.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	accounthdl "cine_catalog/internal/api/account/handler"
	"cine_catalog/internal/api/middleware"
	apirouter "cine_catalog/internal/api/router"
)

// Register đăng ký các route account lên /api. Tất cả đều yêu cầu đăng nhập.
func Register(api fiber.Router, r *apirouter.Router) error {
	accountHandler, err := accounthdl.NewAccountHandler()
	if err != nil {
		return fmt.Errorf("failed to create account handler: %w", err)
	}

	protect := middleware.Protect()
	chain := []fiber.Handler{protect}
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/watchlist", chain, accountHandler.HandleAddToWatchlist)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "DELETE", "/watchlist/:id", chain, accountHandler.HandleRemoveFromWatchlist)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/progress", chain, accountHandler.HandleUpdateProgress)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/favorites", chain, accountHandler.HandleAddToFavorites)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "DELETE", "/favorites/:id", chain, accountHandler.HandleRemoveFromFavorites)
	return nil
}
