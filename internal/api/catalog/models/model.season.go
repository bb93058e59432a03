package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Episode là một tập phim, nhúng trong document Season
type Episode struct {
	TmdbID        int64   `json:"tmdbId" bson:"tmdbId"`
	EpisodeNumber int     `json:"episodeNumber" bson:"episodeNumber"`
	Name          string  `json:"name" bson:"name"`
	Overview      string  `json:"overview" bson:"overview"`
	StillPath     string  `json:"stillPath" bson:"stillPath"`
	AirDate       string  `json:"airDate" bson:"airDate"`
	Runtime       int     `json:"runtime" bson:"runtime"`
	VoteAverage   float64 `json:"voteAverage" bson:"voteAverage"`
}

// Season là một mùa phim đầy đủ (kèm danh sách tập), thuộc về một Series.
// Compound unique index (seriesId, seasonNumber) chặn lưu trùng một mùa.
type Season struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeriesID     primitive.ObjectID `json:"seriesId" bson:"seriesId" index:"compound:series_season_unique"`
	SeriesTmdbID int64              `json:"seriesTmdbId" bson:"seriesTmdbId"`
	SeasonNumber int                `json:"seasonNumber" bson:"seasonNumber" index:"compound:series_season_unique"`
	Name         string             `json:"name" bson:"name"`
	Overview     string             `json:"overview" bson:"overview"`
	PosterPath   string             `json:"posterPath" bson:"posterPath"`
	AirDate      string             `json:"airDate" bson:"airDate"`
	Episodes     []Episode          `json:"episodes" bson:"episodes"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
