package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie đại diện cho một phim lẻ đã được lưu trong catalog.
// TmdbID là định danh duy nhất, ImdbID dùng để tra cứu ratings bên OMDB.
type Movie struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TmdbID       int64              `json:"tmdbId" bson:"tmdbId" index:"unique"`
	ImdbID       string             `json:"imdbId,omitempty" bson:"imdbId,omitempty" index:"unique,sparse"`
	Title        string             `json:"title" bson:"title"`
	Overview     string             `json:"overview" bson:"overview"`
	Tagline      string             `json:"tagline,omitempty" bson:"tagline,omitempty"`
	PosterPath   string             `json:"posterPath" bson:"posterPath"`
	BackdropPath string             `json:"backdropPath" bson:"backdropPath"`
	ReleaseDate  string             `json:"releaseDate" bson:"releaseDate"`
	Runtime      int                `json:"runtime" bson:"runtime"`
	Genres       []Genre            `json:"genres" bson:"genres"`
	VoteAverage  float64            `json:"voteAverage" bson:"voteAverage"`
	VoteCount    int64              `json:"voteCount" bson:"voteCount"`
	Cast         []CastMember       `json:"cast" bson:"cast"`
	CreatedBy    primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
