package catalogsvc

import (
	"context"

	"cine_catalog/internal/api/catalog/client"
	"cine_catalog/internal/api/catalog/models"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
	"cine_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IngestService chịu trách nhiệm đưa nội dung từ TMDB vào catalog.
// Nhập liệu idempotent: nội dung đã có thì trả về bản ghi hiện tại,
// hai request song song cùng một phim chỉ tạo đúng một document
// (nhờ unique index tmdbId + đọc lại khi đụng duplicate key).
type IngestService struct {
	tmdb   *client.TMDBClient
	omdb   *client.OMDBClient
	movies *MovieService
	series *SeriesService
}

// NewIngestService tạo mới IngestService với các client đọc config từ global
func NewIngestService() (*IngestService, error) {
	movieService, err := NewMovieService()
	if err != nil {
		return nil, err
	}
	seriesService, err := NewSeriesService()
	if err != nil {
		return nil, err
	}

	cfg := global.MongoDB_ServerConfig
	return &IngestService{
		tmdb:   client.NewTMDBClient(cfg.TmdbBaseURL, cfg.TmdbAPIKey),
		omdb:   client.NewOMDBClient(cfg.OmdbBaseURL, cfg.OmdbAPIKey),
		movies: movieService,
		series: seriesService,
	}, nil
}

// Tmdb trả về TMDB client (cho các handler đọc dữ liệu live)
func (s *IngestService) Tmdb() *client.TMDBClient {
	return s.tmdb
}

// Omdb trả về OMDB client
func (s *IngestService) Omdb() *client.OMDBClient {
	return s.omdb
}

// MovieFromBundle chuyển dữ liệu chi tiết TMDB thành model Movie của catalog
func MovieFromBundle(bundle *client.TmdbMovieBundle, createdBy primitive.ObjectID) models.Movie {
	return models.Movie{
		TmdbID:       bundle.Details.ID,
		ImdbID:       bundle.ImdbID,
		Title:        bundle.Details.Title,
		Overview:     bundle.Details.Overview,
		Tagline:      bundle.Details.Tagline,
		PosterPath:   bundle.Details.PosterPath,
		BackdropPath: bundle.Details.BackdropPath,
		ReleaseDate:  bundle.Details.ReleaseDate,
		Runtime:      bundle.Details.Runtime,
		Genres:       genresFromTmdb(bundle.Details.Genres),
		VoteAverage:  bundle.Details.VoteAverage,
		VoteCount:    bundle.Details.VoteCount,
		Cast:         castFromTmdb(bundle.Cast),
		CreatedBy:    createdBy,
	}
}

// SeriesFromBundle chuyển dữ liệu chi tiết TMDB thành model Series của catalog
func SeriesFromBundle(bundle *client.TmdbSeriesBundle, createdBy primitive.ObjectID) models.Series {
	seasons := make([]models.SeasonSummary, 0, len(bundle.Details.Seasons))
	for _, s := range bundle.Details.Seasons {
		seasons = append(seasons, models.SeasonSummary{
			SeasonNumber: s.SeasonNumber,
			Name:         s.Name,
			Overview:     s.Overview,
			PosterPath:   s.PosterPath,
			AirDate:      s.AirDate,
			EpisodeCount: s.EpisodeCount,
		})
	}

	return models.Series{
		TmdbID:           bundle.Details.ID,
		ImdbID:           bundle.ImdbID,
		Name:             bundle.Details.Name,
		Overview:         bundle.Details.Overview,
		Tagline:          bundle.Details.Tagline,
		PosterPath:       bundle.Details.PosterPath,
		BackdropPath:     bundle.Details.BackdropPath,
		FirstAirDate:     bundle.Details.FirstAirDate,
		NumberOfSeasons:  bundle.Details.NumberOfSeasons,
		NumberOfEpisodes: bundle.Details.NumberOfEpisodes,
		Genres:           genresFromTmdb(bundle.Details.Genres),
		VoteAverage:      bundle.Details.VoteAverage,
		VoteCount:        bundle.Details.VoteCount,
		Cast:             castFromTmdb(bundle.Cast),
		Seasons:          seasons,
		CreatedBy:        createdBy,
	}
}

// SeasonFromTmdb chuyển chi tiết mùa TMDB thành model Season
func SeasonFromTmdb(detail *client.TmdbSeasonDetails, seriesID primitive.ObjectID, seriesTmdbID int64) models.Season {
	episodes := make([]models.Episode, 0, len(detail.Episodes))
	for _, e := range detail.Episodes {
		episodes = append(episodes, models.Episode{
			TmdbID:        e.ID,
			EpisodeNumber: e.EpisodeNumber,
			Name:          e.Name,
			Overview:      e.Overview,
			StillPath:     e.StillPath,
			AirDate:       e.AirDate,
			Runtime:       e.Runtime,
			VoteAverage:   e.VoteAverage,
		})
	}

	return models.Season{
		SeriesID:     seriesID,
		SeriesTmdbID: seriesTmdbID,
		SeasonNumber: detail.SeasonNumber,
		Name:         detail.Name,
		Overview:     detail.Overview,
		PosterPath:   detail.PosterPath,
		AirDate:      detail.AirDate,
		Episodes:     episodes,
	}
}

func genresFromTmdb(genres []client.TmdbGenre) []models.Genre {
	result := make([]models.Genre, 0, len(genres))
	for _, g := range genres {
		result = append(result, models.Genre{ID: g.ID, Name: g.Name})
	}
	return result
}

func castFromTmdb(cast []client.TmdbCastMember) []models.CastMember {
	result := make([]models.CastMember, 0, len(cast))
	for _, c := range cast {
		result = append(result, models.CastMember{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
		})
	}
	return result
}

// resolveDuplicateInsert xử lý lỗi insert khi đụng unique index tmdbId:
// request song song đã insert trước thì đọc lại bản ghi thắng cuộc,
// lỗi khác giữ nguyên
func resolveDuplicateInsert[T any](insertErr error, refetch func() (T, error)) (T, error) {
	if common.IsDuplicate(insertErr) {
		return refetch()
	}
	var zero T
	return zero, insertErr
}

// EnsureMovie đảm bảo phim với tmdbID đã có trong catalog và trả về nó.
// Flow: tìm theo tmdbId -> chưa có thì fetch TMDB và insert ->
// đụng duplicate key (request song song) thì đọc lại bản ghi thắng cuộc.
func (s *IngestService) EnsureMovie(ctx context.Context, tmdbID int64, createdBy primitive.ObjectID) (models.Movie, error) {
	movie, err := s.movies.FindByTmdbID(ctx, tmdbID)
	if err == nil {
		return movie, nil
	}
	if !isNotFound(err) {
		return models.Movie{}, err
	}

	bundle, err := s.tmdb.MovieDetails(ctx, tmdbID)
	if err != nil {
		if isNotFound(err) {
			return models.Movie{}, common.NewError(common.ErrCodeUpstream, "Content not found in TMDB", common.StatusNotFound, nil)
		}
		return models.Movie{}, err
	}

	inserted, err := s.movies.InsertOne(ctx, MovieFromBundle(bundle, createdBy))
	if err != nil {
		return resolveDuplicateInsert(err, func() (models.Movie, error) {
			return s.movies.FindByTmdbID(ctx, tmdbID)
		})
	}

	logger.WithCollection(global.MongoDB_ColNames.Movies).WithField("tmdb_id", tmdbID).Info("🎬 Movie ingested into catalog")
	return inserted, nil
}

// EnsureSeries đảm bảo series với tmdbID đã có trong catalog và trả về nó.
// Ngoài document Series, các mùa cũng được lưu thành document Season riêng.
func (s *IngestService) EnsureSeries(ctx context.Context, tmdbID int64, createdBy primitive.ObjectID) (models.Series, error) {
	series, err := s.series.FindByTmdbID(ctx, tmdbID)
	if err == nil {
		return series, nil
	}
	if !isNotFound(err) {
		return models.Series{}, err
	}

	bundle, err := s.tmdb.SeriesDetails(ctx, tmdbID)
	if err != nil {
		if isNotFound(err) {
			return models.Series{}, common.NewError(common.ErrCodeUpstream, "Content not found in TMDB", common.StatusNotFound, nil)
		}
		return models.Series{}, err
	}

	inserted, err := s.series.InsertOne(ctx, SeriesFromBundle(bundle, createdBy))
	if err != nil {
		return resolveDuplicateInsert(err, func() (models.Series, error) {
			return s.series.FindByTmdbID(ctx, tmdbID)
		})
	}

	// Lưu chi tiết từng mùa; lỗi một mùa không chặn việc ingest series
	for _, summary := range bundle.Details.Seasons {
		seasonDetail, err := s.tmdb.SeasonDetails(ctx, tmdbID, summary.SeasonNumber)
		if err != nil {
			logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
				"tmdb_id": tmdbID,
				"season":  summary.SeasonNumber,
			}).Warn("Failed to fetch season detail, skipping")
			continue
		}
		if _, err := s.series.UpsertSeason(ctx, SeasonFromTmdb(seasonDetail, inserted.ID, tmdbID)); err != nil {
			logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
				"tmdb_id": tmdbID,
				"season":  summary.SeasonNumber,
			}).Warn("Failed to store season, skipping")
		}
	}

	logger.WithCollection(global.MongoDB_ColNames.Series).WithField("tmdb_id", tmdbID).Info("🎬 Series ingested into catalog")
	return inserted, nil
}

// EnsureContent đảm bảo nội dung (Movie hoặc Series) đã có trong catalog,
// trả về _id của document tương ứng
func (s *IngestService) EnsureContent(ctx context.Context, contentType string, tmdbID int64, createdBy primitive.ObjectID) (primitive.ObjectID, error) {
	switch contentType {
	case models.ContentTypeMovie:
		movie, err := s.EnsureMovie(ctx, tmdbID, createdBy)
		if err != nil {
			return primitive.NilObjectID, err
		}
		return movie.ID, nil
	case models.ContentTypeSeries:
		series, err := s.EnsureSeries(ctx, tmdbID, createdBy)
		if err != nil {
			return primitive.NilObjectID, err
		}
		return series.ID, nil
	default:
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Invalid content type", common.StatusBadRequest, nil)
	}
}

// MovieDetailsWithRatings lấy chi tiết phim live từ TMDB kèm ratings OMDB.
// Ratings lỗi thì bỏ qua, chi tiết TMDB lỗi thì propagate.
func (s *IngestService) MovieDetailsWithRatings(ctx context.Context, tmdbID int64) (*client.TmdbMovieBundle, []models.Rating, error) {
	bundle, err := s.tmdb.MovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, nil, err
	}
	return bundle, s.omdb.GetRatings(ctx, bundle.ImdbID), nil
}

// SeriesDetailsWithRatings lấy chi tiết series live từ TMDB kèm ratings OMDB
func (s *IngestService) SeriesDetailsWithRatings(ctx context.Context, tmdbID int64) (*client.TmdbSeriesBundle, []models.Rating, error) {
	bundle, err := s.tmdb.SeriesDetails(ctx, tmdbID)
	if err != nil {
		return nil, nil, err
	}
	return bundle, s.omdb.GetRatings(ctx, bundle.ImdbID), nil
}

// isNotFound kiểm tra err có phải lỗi 404 (not found) của hệ thống
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*common.Error); ok {
		return appErr.StatusCode == common.StatusNotFound
	}
	return false
}
