// Package models chứa các model của catalog: phim lẻ, phim bộ, mùa phim.
package models

// Loại nội dung trong catalog. Dùng chung cho watchlist, favorites và reviews.
const (
	ContentTypeMovie  = "Movie"
	ContentTypeSeries = "Series"
)

// Genre là thể loại phim lấy từ TMDB
type Genre struct {
	ID   int64  `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// CastMember là một diễn viên trong danh sách cast (tối đa 10 người đầu)
type CastMember struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Character   string `json:"character" bson:"character"`
	ProfilePath string `json:"profilePath" bson:"profilePath"`
}

// Rating là điểm đánh giá từ một nguồn bên ngoài (OMDB)
type Rating struct {
	Source string `json:"Source" bson:"source"`
	Value  string `json:"Value" bson:"value"`
}
