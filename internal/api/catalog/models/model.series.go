package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SeasonSummary là thông tin tóm tắt một mùa, nhúng trong document Series
type SeasonSummary struct {
	SeasonNumber int    `json:"seasonNumber" bson:"seasonNumber"`
	Name         string `json:"name" bson:"name"`
	Overview     string `json:"overview" bson:"overview"`
	PosterPath   string `json:"posterPath" bson:"posterPath"`
	AirDate      string `json:"airDate" bson:"airDate"`
	EpisodeCount int    `json:"episodeCount" bson:"episodeCount"`
}

// Series đại diện cho một phim bộ đã được lưu trong catalog
type Series struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TmdbID           int64              `json:"tmdbId" bson:"tmdbId" index:"unique"`
	ImdbID           string             `json:"imdbId,omitempty" bson:"imdbId,omitempty" index:"unique,sparse"`
	Name             string             `json:"name" bson:"name"`
	Overview         string             `json:"overview" bson:"overview"`
	Tagline          string             `json:"tagline,omitempty" bson:"tagline,omitempty"`
	PosterPath       string             `json:"posterPath" bson:"posterPath"`
	BackdropPath     string             `json:"backdropPath" bson:"backdropPath"`
	FirstAirDate     string             `json:"firstAirDate" bson:"firstAirDate"`
	NumberOfSeasons  int                `json:"numberOfSeasons" bson:"numberOfSeasons"`
	NumberOfEpisodes int                `json:"numberOfEpisodes" bson:"numberOfEpisodes"`
	Genres           []Genre            `json:"genres" bson:"genres"`
	VoteAverage      float64            `json:"voteAverage" bson:"voteAverage"`
	VoteCount        int64              `json:"voteCount" bson:"voteCount"`
	Cast             []CastMember       `json:"cast" bson:"cast"`
	Seasons          []SeasonSummary    `json:"seasons" bson:"seasons"`
	CreatedBy        primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
