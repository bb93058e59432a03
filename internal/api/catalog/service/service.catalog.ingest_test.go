// Package catalogsvc - Test chuyển đổi dữ liệu TMDB sang model catalog.
package catalogsvc

import (
	"errors"
	"testing"

	"cine_catalog/internal/api/catalog/client"
	"cine_catalog/internal/api/catalog/models"
	"cine_catalog/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleMovieBundle() *client.TmdbMovieBundle {
	return &client.TmdbMovieBundle{
		Details: client.TmdbMovieDetails{
			ID:           550,
			Title:        "Fight Club",
			Overview:     "An insomniac office worker...",
			Tagline:      "Mischief. Mayhem. Soap.",
			PosterPath:   "/poster.jpg",
			BackdropPath: "/backdrop.jpg",
			ReleaseDate:  "1999-10-15",
			Runtime:      139,
			Genres:       []client.TmdbGenre{{ID: 18, Name: "Drama"}},
			VoteAverage:  8.4,
			VoteCount:    27000,
		},
		Cast: []client.TmdbCastMember{
			{ID: 819, Name: "Edward Norton", Character: "The Narrator", ProfilePath: "/norton.jpg"},
		},
		Recommendations: []client.TmdbListItem{{ID: 807, Title: "Se7en"}},
		ImdbID:          "tt0137523",
	}
}

func TestMovieFromBundle(t *testing.T) {
	createdBy := primitive.NewObjectID()
	movie := MovieFromBundle(sampleMovieBundle(), createdBy)

	assert.Equal(t, int64(550), movie.TmdbID, "TmdbID phải được map từ details")
	assert.Equal(t, "tt0137523", movie.ImdbID)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "1999-10-15", movie.ReleaseDate)
	assert.Equal(t, 139, movie.Runtime)
	assert.Equal(t, createdBy, movie.CreatedBy)

	require.Len(t, movie.Genres, 1)
	assert.Equal(t, "Drama", movie.Genres[0].Name)

	require.Len(t, movie.Cast, 1)
	assert.Equal(t, "Edward Norton", movie.Cast[0].Name)
	assert.Equal(t, "The Narrator", movie.Cast[0].Character)
}

func TestSeriesFromBundle(t *testing.T) {
	bundle := &client.TmdbSeriesBundle{
		Details: client.TmdbSeriesDetails{
			ID:               1396,
			Name:             "Breaking Bad",
			FirstAirDate:     "2008-01-20",
			NumberOfSeasons:  5,
			NumberOfEpisodes: 62,
			Genres:           []client.TmdbGenre{{ID: 18, Name: "Drama"}, {ID: 80, Name: "Crime"}},
			VoteAverage:      8.9,
			Seasons: []client.TmdbSeasonSummary{
				{SeasonNumber: 1, Name: "Season 1", AirDate: "2008-01-20", EpisodeCount: 7},
				{SeasonNumber: 2, Name: "Season 2", AirDate: "2009-03-08", EpisodeCount: 13},
			},
		},
		ImdbID: "tt0903747",
	}

	createdBy := primitive.NewObjectID()
	series := SeriesFromBundle(bundle, createdBy)

	assert.Equal(t, int64(1396), series.TmdbID)
	assert.Equal(t, "Breaking Bad", series.Name)
	assert.Equal(t, 5, series.NumberOfSeasons)
	assert.Equal(t, 62, series.NumberOfEpisodes)
	assert.Equal(t, createdBy, series.CreatedBy)

	require.Len(t, series.Seasons, 2, "Tóm tắt các mùa phải được giữ lại")
	assert.Equal(t, 1, series.Seasons[0].SeasonNumber)
	assert.Equal(t, 13, series.Seasons[1].EpisodeCount)
}

func TestSeasonFromTmdb(t *testing.T) {
	detail := &client.TmdbSeasonDetails{
		ID:           3572,
		SeasonNumber: 1,
		Name:         "Season 1",
		AirDate:      "2008-01-20",
		Episodes: []client.TmdbEpisode{
			{ID: 62085, EpisodeNumber: 1, Name: "Pilot", Runtime: 58, VoteAverage: 8.2},
			{ID: 62086, EpisodeNumber: 2, Name: "Cat's in the Bag...", Runtime: 48},
		},
	}

	seriesID := primitive.NewObjectID()
	season := SeasonFromTmdb(detail, seriesID, 1396)

	assert.Equal(t, seriesID, season.SeriesID)
	assert.Equal(t, int64(1396), season.SeriesTmdbID)
	assert.Equal(t, 1, season.SeasonNumber)

	require.Len(t, season.Episodes, 2, "Danh sách tập phải được nhúng vào mùa")
	assert.Equal(t, int64(62085), season.Episodes[0].TmdbID)
	assert.Equal(t, "Pilot", season.Episodes[0].Name)
	assert.Equal(t, 58, season.Episodes[0].Runtime)
}

func TestResolveDuplicateInsert_RaceReadsWinner(t *testing.T) {
	winner := models.Movie{ID: primitive.NewObjectID(), TmdbID: 550, Title: "Fight Club"}

	refetched := false
	got, err := resolveDuplicateInsert(common.ErrMongoDuplicate, func() (models.Movie, error) {
		refetched = true
		return winner, nil
	})

	require.NoError(t, err, "Đụng duplicate key phải trả về bản ghi đã có, không phải lỗi")
	assert.True(t, refetched, "Đụng duplicate key thì phải đọc lại bản ghi thắng cuộc")
	assert.Equal(t, winner.ID, got.ID)
	assert.Equal(t, int64(550), got.TmdbID)
}

func TestResolveDuplicateInsert_OtherErrorPassesThrough(t *testing.T) {
	insertErr := errors.New("write concern failed")

	_, err := resolveDuplicateInsert(insertErr, func() (models.Movie, error) {
		t.Fatal("Lỗi không phải duplicate thì không được đọc lại")
		return models.Movie{}, nil
	})

	assert.ErrorIs(t, err, insertErr, "Lỗi không phải duplicate phải được giữ nguyên")
}

func TestMovieFromBundle_EmptyOptional(t *testing.T) {
	bundle := &client.TmdbMovieBundle{
		Details: client.TmdbMovieDetails{ID: 550, Title: "Fight Club"},
	}
	movie := MovieFromBundle(bundle, primitive.NilObjectID)

	assert.Empty(t, movie.ImdbID)
	assert.Empty(t, movie.Genres)
	assert.Empty(t, movie.Cast)
	assert.True(t, movie.CreatedBy.IsZero(), "CreatedBy phải rỗng khi không có user")
}
