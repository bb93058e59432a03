// Package router đăng ký các route thuộc domain catalog: movies, series.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "cine_catalog/internal/api/catalog/handler"
	"cine_catalog/internal/api/middleware"
	apirouter "cine_catalog/internal/api/router"
)

// Register đăng ký tất cả route catalog lên /api.
// LƯU Ý: route public phải đăng ký TRƯỚC group có middleware admin,
// vì middleware .Use() áp dụng cho mọi request match prefix đăng ký sau nó.
func Register(api fiber.Router, r *apirouter.Router) error {
	if err := registerMovieRoutes(api); err != nil {
		return err
	}
	if err := registerSeriesRoutes(api); err != nil {
		return err
	}
	return nil
}

func registerMovieRoutes(router fiber.Router) error {
	movieHandler, err := cataloghdl.NewMovieHandler()
	if err != nil {
		return fmt.Errorf("failed to create movie handler: %w", err)
	}

	// Public - duyệt TMDB và đọc bản ghi local
	router.Get("/movies/trending", movieHandler.HandleTrending)
	router.Get("/movies/search", movieHandler.HandleSearch)
	router.Get("/movies/discover", movieHandler.HandleDiscover)
	router.Get("/movies/genres/list", movieHandler.HandleGenres)
	router.Get("/movies/tmdb/:tmdbId", movieHandler.HandleDetailsByTmdbID)
	router.Get("/movies/:id", movieHandler.HandleGetByID)

	// Admin - quản lý bản ghi local
	protect := middleware.Protect()
	requireAdmin := middleware.RequireAdmin()
	adminChain := []fiber.Handler{protect, requireAdmin}
	apirouter.RegisterRouteWithMiddleware(router, "/movies", "POST", "/", adminChain, movieHandler.HandleAdd)
	apirouter.RegisterRouteWithMiddleware(router, "/movies", "PUT", "/:id", adminChain, movieHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/movies", "DELETE", "/:id", adminChain, movieHandler.HandleDelete)
	return nil
}

func registerSeriesRoutes(router fiber.Router) error {
	seriesHandler, err := cataloghdl.NewSeriesHandler()
	if err != nil {
		return fmt.Errorf("failed to create series handler: %w", err)
	}

	// Public - duyệt TMDB và đọc bản ghi local
	router.Get("/series/trending", seriesHandler.HandleTrending)
	router.Get("/series/search", seriesHandler.HandleSearch)
	router.Get("/series/discover", seriesHandler.HandleDiscover)
	router.Get("/series/genres/list", seriesHandler.HandleGenres)
	router.Get("/series/tmdb/:tmdbId", seriesHandler.HandleDetailsByTmdbID)
	router.Get("/series/:seriesId/seasons/:seasonNumber", seriesHandler.HandleSeasonDetails)
	router.Get("/series/:id/seasons", seriesHandler.HandleListSeasons)
	router.Get("/series/:id", seriesHandler.HandleGetByID)

	// Admin - quản lý bản ghi local
	protect := middleware.Protect()
	requireAdmin := middleware.RequireAdmin()
	adminChain := []fiber.Handler{protect, requireAdmin}
	apirouter.RegisterRouteWithMiddleware(router, "/series", "POST", "/", adminChain, seriesHandler.HandleAdd)
	apirouter.RegisterRouteWithMiddleware(router, "/series", "PUT", "/:id", adminChain, seriesHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/series", "DELETE", "/:id", adminChain, seriesHandler.HandleDelete)
	return nil
}
