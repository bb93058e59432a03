package cataloghdl

import (
	"fmt"

	basesvc "cine_catalog/internal/api/base/service"
	catalogdto "cine_catalog/internal/api/catalog/dto"
	catalogsvc "cine_catalog/internal/api/catalog/service"
	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// MovieHandler xử lý các request movie: duyệt TMDB, chi tiết và quản trị bản ghi local
type MovieHandler struct {
	contentBrowser
	movies *catalogsvc.MovieService
}

// NewMovieHandler tạo instance mới của MovieHandler
func NewMovieHandler() (*MovieHandler, error) {
	ingest, err := catalogsvc.NewIngestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest service: %v", err)
	}
	movieService, err := catalogsvc.NewMovieService()
	if err != nil {
		return nil, fmt.Errorf("failed to create movie service: %v", err)
	}
	return &MovieHandler{
		contentBrowser: contentBrowser{ingest: ingest, mediaType: "movie"},
		movies:         movieService,
	}, nil
}

// HandleDetailsByTmdbID trả về chi tiết phim từ TMDB kèm ratings từ OMDB
func (h *MovieHandler) HandleDetailsByTmdbID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tmdbID, err := h.parseTmdbIDParam(c, "tmdbId")
		if err != nil {
			return h.HandleError(c, err)
		}

		bundle, ratings, err := h.ingest.MovieDetailsWithRatings(c.Context(), tmdbID)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleResponse(c, common.StatusOK, fiber.Map{
			"details":         bundle.Details,
			"cast":            bundle.Cast,
			"recommendations": bundle.Recommendations,
			"imdbId":          bundle.ImdbID,
			"ratings":         ratings,
		})
	})
}

// HandleGetByID trả về bản ghi movie trong database theo ObjectID
func (h *MovieHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		movie, err := h.movies.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, movie)
	})
}

// HandleAdd thêm movie từ TMDB vào database (admin)
func (h *MovieHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ContentAddInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		exists, err := h.movies.ExistsByTmdbID(c.Context(), input.TmdbID)
		if err != nil {
			return h.HandleError(c, err)
		}
		if exists {
			return h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Movie already exists in database", common.StatusBadRequest, nil))
		}

		createdBy, _ := h.GetUserID(c)
		movie, err := h.ingest.EnsureMovie(c.Context(), input.TmdbID, createdBy)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("create", "movies", movie.ID.Hex(), c, map[string]interface{}{"tmdbId": input.TmdbID})
		return h.HandleResponse(c, common.StatusCreated, movie)
	})
}

// HandleUpdate cập nhật các field của movie trong database (admin)
func (h *MovieHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		var input catalogdto.MovieUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		set := map[string]interface{}{}
		if input.Title != "" {
			set["title"] = input.Title
		}
		if input.Overview != "" {
			set["overview"] = input.Overview
		}
		if input.Tagline != "" {
			set["tagline"] = input.Tagline
		}
		if input.PosterPath != "" {
			set["posterPath"] = input.PosterPath
		}
		if input.BackdropPath != "" {
			set["backdropPath"] = input.BackdropPath
		}
		if input.ReleaseDate != "" {
			set["releaseDate"] = input.ReleaseDate
		}
		if input.Runtime > 0 {
			set["runtime"] = input.Runtime
		}
		if input.VoteAverage > 0 {
			set["voteAverage"] = input.VoteAverage
		}

		if len(set) == 0 {
			movie, err := h.movies.FindOneById(c.Context(), id)
			if err != nil {
				return h.HandleError(c, err)
			}
			return h.HandleResponse(c, common.StatusOK, movie)
		}

		movie, err := h.movies.UpdateById(c.Context(), id, &basesvc.UpdateData{Set: set})
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("update", "movies", movie.ID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, movie)
	})
}

// HandleDelete xóa movie khỏi database (admin)
func (h *MovieHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.movies.DeleteById(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("delete", "movies", id.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"message": "Movie removed"})
	})
}
