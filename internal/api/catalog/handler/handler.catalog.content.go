// Package cataloghdl xử lý các request của domain catalog (movies, series).
package cataloghdl

import (
	"fmt"
	"strconv"

	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/api/catalog/client"
	catalogsvc "cine_catalog/internal/api/catalog/service"
	"cine_catalog/internal/common"

	"github.com/gofiber/fiber/v3"
)

// contentBrowser chứa các handler pass-through TMDB dùng chung cho movie và series.
// mediaType là "movie" hoặc "tv" theo quy ước của TMDB.
type contentBrowser struct {
	basehdl.BaseHandler
	ingest    *catalogsvc.IngestService
	mediaType string
}

// parseIntParam convert path param sang số nguyên không âm
func parseIntParam(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid integer param: %q", raw)
	}
	return v, nil
}

// parseTmdbIDParam lấy path param và convert sang TMDB id (số nguyên dương)
func (h *contentBrowser) parseTmdbIDParam(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewError(common.ErrCodeValidationFormat, "Invalid TMDB id", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleTrending trả về danh sách trending từ TMDB (window mặc định: week)
func (h *contentBrowser) HandleTrending(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		window := c.Query("window", "week")
		page, err := h.ingest.Tmdb().Trending(c.Context(), h.mediaType, window)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, page)
	})
}

// HandleSearch tìm kiếm qua TMDB multi-search, lọc kết quả theo media type
func (h *contentBrowser) HandleSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := c.Query("query")
		if query == "" {
			return h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Query parameter is required", common.StatusBadRequest, nil))
		}

		pageNum, _ := strconv.Atoi(c.Query("page", "1"))
		page, err := h.ingest.Tmdb().SearchMulti(c.Context(), query, pageNum)
		if err != nil {
			return h.HandleError(c, err)
		}

		// Multi-search trộn lẫn movie/tv/person, chỉ giữ đúng media type
		filtered := make([]client.TmdbListItem, 0, len(page.Results))
		for _, item := range page.Results {
			if item.MediaType == h.mediaType {
				filtered = append(filtered, item)
			}
		}
		page.Results = filtered
		return h.HandleResponse(c, common.StatusOK, page)
	})
}

// HandleDiscover lọc danh sách theo thể loại, năm, điểm đánh giá
func (h *contentBrowser) HandleDiscover(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := client.DiscoverOptions{
			WithGenres: c.Query("genre"),
			SortBy:     c.Query("sortBy"),
		}
		if raw := c.Query("year"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				opts.Year = v
			}
		}
		if raw := c.Query("rating"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				opts.VoteAverageGte = v
			}
		}
		if raw := c.Query("page"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				opts.Page = v
			}
		}

		page, err := h.ingest.Tmdb().Discover(c.Context(), h.mediaType, opts)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, page)
	})
}

// HandleGenres trả về danh sách thể loại theo media type
func (h *contentBrowser) HandleGenres(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		genres, err := h.ingest.Tmdb().Genres(c.Context(), h.mediaType)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"genres": genres})
	})
}
