// Package client chứa các HTTP client gọi API bên thứ ba (TMDB, OMDB).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// Số diễn viên tối đa giữ lại từ credits
	maxCastMembers = 10
	// Số phim đề xuất tối đa giữ lại từ recommendations
	maxRecommendations = 12
)

// TMDBClient gọi The Movie Database API v3.
// BaseURL inject được để test với httptest server.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewTMDBClient tạo client TMDB mới.
// baseURL rỗng sẽ dùng endpoint production của TMDB.
func NewTMDBClient(baseURL string, apiKey string) *TMDBClient {
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	return &TMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// get thực hiện GET request tới TMDB, tự gắn api_key, decode JSON vào out
func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, "Failed to build TMDB request", common.StatusInternalServerError, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("path", path).Error("TMDB request failed")
		return common.NewError(common.ErrCodeUpstream, "Failed to fetch data from TMDB", common.StatusInternalServerError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return common.NewError(common.ErrCodeUpstream, "Content not found in TMDB", common.StatusNotFound, nil)
	}
	if resp.StatusCode != http.StatusOK {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		}).Error("TMDB returned non-200 status")
		return common.NewError(common.ErrCodeUpstream, "Failed to fetch data from TMDB", common.StatusInternalServerError, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.NewError(common.ErrCodeUpstream, "Failed to decode TMDB response", common.StatusInternalServerError, err)
	}
	return nil
}

// Trending trả về danh sách trending theo mediaType ("movie"/"tv").
// timeWindow mặc định là "week".
func (c *TMDBClient) Trending(ctx context.Context, mediaType string, timeWindow string) (*TmdbPage, error) {
	if timeWindow == "" {
		timeWindow = "week"
	}
	var page TmdbPage
	path := fmt.Sprintf("/trending/%s/%s", mediaType, timeWindow)
	if err := c.get(ctx, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchMulti tìm kiếm cả movie và tv theo query
func (c *TMDBClient) SearchMulti(ctx context.Context, query string, page int) (*TmdbPage, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var result TmdbPage
	if err := c.get(ctx, "/search/multi", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DiscoverOptions là bộ lọc cho endpoint discover
type DiscoverOptions struct {
	WithGenres     string  // Danh sách genre id phân cách bằng dấu phẩy
	Year           int     // Năm phát hành (movie) hoặc năm phát sóng đầu (tv)
	SortBy         string  // Mặc định popularity.desc
	VoteAverageGte float64 // Điểm đánh giá tối thiểu
	Page           int     // Mặc định 1
}

// Discover lọc danh sách phim theo thể loại, năm, điểm đánh giá
func (c *TMDBClient) Discover(ctx context.Context, mediaType string, opts DiscoverOptions) (*TmdbPage, error) {
	params := url.Values{}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	if opts.WithGenres != "" {
		params.Set("with_genres", opts.WithGenres)
	}
	if opts.Year > 0 {
		// Movie và TV dùng tên param khác nhau cho năm
		if mediaType == "movie" {
			params.Set("primary_release_year", strconv.Itoa(opts.Year))
		} else {
			params.Set("first_air_date_year", strconv.Itoa(opts.Year))
		}
	}
	if opts.VoteAverageGte > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(opts.VoteAverageGte, 'f', -1, 64))
	}

	var result TmdbPage
	if err := c.get(ctx, "/discover/"+mediaType, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres trả về danh sách thể loại theo mediaType
func (c *TMDBClient) Genres(ctx context.Context, mediaType string) ([]TmdbGenre, error) {
	var list TmdbGenreList
	if err := c.get(ctx, fmt.Sprintf("/genre/%s/list", mediaType), nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// MovieDetails lấy chi tiết phim lẻ: details, credits, recommendations và
// external IDs chạy song song, sau đó gộp thành một bundle.
func (c *TMDBClient) MovieDetails(ctx context.Context, tmdbID int64) (*TmdbMovieBundle, error) {
	var (
		details     TmdbMovieDetails
		credits     TmdbCredits
		recs        TmdbPage
		externalIDs TmdbExternalIDs
	)

	base := fmt.Sprintf("/movie/%d", tmdbID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(gctx, base, nil, &details) })
	g.Go(func() error { return c.get(gctx, base+"/credits", nil, &credits) })
	g.Go(func() error { return c.get(gctx, base+"/recommendations", nil, &recs) })
	g.Go(func() error { return c.get(gctx, base+"/external_ids", nil, &externalIDs) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TmdbMovieBundle{
		Details:         details,
		Cast:            trimCast(credits.Cast),
		Recommendations: trimRecommendations(recs.Results),
		ImdbID:          externalIDs.ImdbID,
	}, nil
}

// SeriesDetails lấy chi tiết phim bộ song song, tương tự MovieDetails
func (c *TMDBClient) SeriesDetails(ctx context.Context, tmdbID int64) (*TmdbSeriesBundle, error) {
	var (
		details     TmdbSeriesDetails
		credits     TmdbCredits
		recs        TmdbPage
		externalIDs TmdbExternalIDs
	)

	base := fmt.Sprintf("/tv/%d", tmdbID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(gctx, base, nil, &details) })
	g.Go(func() error { return c.get(gctx, base+"/credits", nil, &credits) })
	g.Go(func() error { return c.get(gctx, base+"/recommendations", nil, &recs) })
	g.Go(func() error { return c.get(gctx, base+"/external_ids", nil, &externalIDs) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TmdbSeriesBundle{
		Details:         details,
		Cast:            trimCast(credits.Cast),
		Recommendations: trimRecommendations(recs.Results),
		ImdbID:          externalIDs.ImdbID,
	}, nil
}

// SeasonDetails lấy chi tiết một mùa của phim bộ kèm danh sách tập
func (c *TMDBClient) SeasonDetails(ctx context.Context, seriesTmdbID int64, seasonNumber int) (*TmdbSeasonDetails, error) {
	var season TmdbSeasonDetails
	path := fmt.Sprintf("/tv/%d/season/%d", seriesTmdbID, seasonNumber)
	if err := c.get(ctx, path, nil, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// trimCast giữ lại tối đa maxCastMembers diễn viên đầu danh sách
func trimCast(cast []TmdbCastMember) []TmdbCastMember {
	if len(cast) > maxCastMembers {
		return cast[:maxCastMembers]
	}
	return cast
}

// trimRecommendations giữ lại tối đa maxRecommendations kết quả đầu
func trimRecommendations(results []TmdbListItem) []TmdbListItem {
	if len(results) > maxRecommendations {
		return results[:maxRecommendations]
	}
	return results
}
