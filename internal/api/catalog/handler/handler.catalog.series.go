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

// SeriesHandler xử lý các request series: duyệt TMDB, chi tiết mùa và quản trị bản ghi local
type SeriesHandler struct {
	contentBrowser
	series *catalogsvc.SeriesService
}

// NewSeriesHandler tạo instance mới của SeriesHandler
func NewSeriesHandler() (*SeriesHandler, error) {
	ingest, err := catalogsvc.NewIngestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest service: %v", err)
	}
	seriesService, err := catalogsvc.NewSeriesService()
	if err != nil {
		return nil, fmt.Errorf("failed to create series service: %v", err)
	}
	return &SeriesHandler{
		contentBrowser: contentBrowser{ingest: ingest, mediaType: "tv"},
		series:         seriesService,
	}, nil
}

// HandleDetailsByTmdbID trả về chi tiết series từ TMDB kèm ratings từ OMDB
func (h *SeriesHandler) HandleDetailsByTmdbID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tmdbID, err := h.parseTmdbIDParam(c, "tmdbId")
		if err != nil {
			return h.HandleError(c, err)
		}

		bundle, ratings, err := h.ingest.SeriesDetailsWithRatings(c.Context(), tmdbID)
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

// HandleSeasonDetails trả về chi tiết một mùa kèm danh sách tập, đọc trực tiếp từ TMDB
func (h *SeriesHandler) HandleSeasonDetails(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		seriesTmdbID, err := h.parseTmdbIDParam(c, "seriesId")
		if err != nil {
			return h.HandleError(c, err)
		}
		seasonNumber, err := parseIntParam(c.Params("seasonNumber"))
		if err != nil {
			return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, "Invalid season number", common.StatusBadRequest, err))
		}

		season, err := h.ingest.Tmdb().SeasonDetails(c.Context(), seriesTmdbID, seasonNumber)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, season)
	})
}

// HandleListSeasons trả về các mùa đã lưu của một series trong database,
// sắp theo seasonNumber
func (h *SeriesHandler) HandleListSeasons(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		seasons, err := h.series.FindSeasons(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, seasons)
	})
}

// HandleGetByID trả về bản ghi series trong database theo ObjectID
func (h *SeriesHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		series, err := h.series.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, series)
	})
}

// HandleAdd thêm series từ TMDB vào database kèm các mùa (admin)
func (h *SeriesHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ContentAddInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		exists, err := h.series.ExistsByTmdbID(c.Context(), input.TmdbID)
		if err != nil {
			return h.HandleError(c, err)
		}
		if exists {
			return h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Series already exists in database", common.StatusBadRequest, nil))
		}

		createdBy, _ := h.GetUserID(c)
		series, err := h.ingest.EnsureSeries(c.Context(), input.TmdbID, createdBy)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("create", "series", series.ID.Hex(), c, map[string]interface{}{"tmdbId": input.TmdbID})
		return h.HandleResponse(c, common.StatusCreated, series)
	})
}

// HandleUpdate cập nhật các field của series trong database (admin)
func (h *SeriesHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		var input catalogdto.SeriesUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		set := map[string]interface{}{}
		if input.Name != "" {
			set["name"] = input.Name
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
		if input.FirstAirDate != "" {
			set["firstAirDate"] = input.FirstAirDate
		}
		if input.NumberOfSeasons > 0 {
			set["numberOfSeasons"] = input.NumberOfSeasons
		}
		if input.NumberOfEpisodes > 0 {
			set["numberOfEpisodes"] = input.NumberOfEpisodes
		}
		if input.VoteAverage > 0 {
			set["voteAverage"] = input.VoteAverage
		}

		if len(set) == 0 {
			series, err := h.series.FindOneById(c.Context(), id)
			if err != nil {
				return h.HandleError(c, err)
			}
			return h.HandleResponse(c, common.StatusOK, series)
		}

		series, err := h.series.UpdateById(c.Context(), id, &basesvc.UpdateData{Set: set})
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("update", "series", series.ID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, series)
	})
}

// HandleDelete xóa series và các mùa thuộc về nó khỏi database (admin)
func (h *SeriesHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.series.DeleteWithSeasons(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("delete", "series", id.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"message": "Series removed"})
	})
}
