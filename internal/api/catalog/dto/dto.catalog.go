// Package catalogdto chứa các cấu trúc input của domain catalog.
package catalogdto

// ContentAddInput là dữ liệu đầu vào để thêm movie/series từ TMDB vào database
type ContentAddInput struct {
	TmdbID int64 `json:"tmdbId" validate:"required,gt=0"`
}

// MovieUpdateInput là dữ liệu cập nhật movie. Chỉ field có giá trị mới được cập nhật.
type MovieUpdateInput struct {
	Title        string  `json:"title,omitempty" validate:"omitempty,max=500,no_xss"`
	Overview     string  `json:"overview,omitempty" validate:"omitempty,max=5000"`
	Tagline      string  `json:"tagline,omitempty" validate:"omitempty,max=500"`
	PosterPath   string  `json:"posterPath,omitempty"`
	BackdropPath string  `json:"backdropPath,omitempty"`
	ReleaseDate  string  `json:"releaseDate,omitempty"`
	Runtime      int     `json:"runtime,omitempty" validate:"omitempty,gte=0"`
	VoteAverage  float64 `json:"voteAverage,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// SeriesUpdateInput là dữ liệu cập nhật series. Chỉ field có giá trị mới được cập nhật.
type SeriesUpdateInput struct {
	Name             string  `json:"name,omitempty" validate:"omitempty,max=500,no_xss"`
	Overview         string  `json:"overview,omitempty" validate:"omitempty,max=5000"`
	Tagline          string  `json:"tagline,omitempty" validate:"omitempty,max=500"`
	PosterPath       string  `json:"posterPath,omitempty"`
	BackdropPath     string  `json:"backdropPath,omitempty"`
	FirstAirDate     string  `json:"firstAirDate,omitempty"`
	NumberOfSeasons  int     `json:"numberOfSeasons,omitempty" validate:"omitempty,gte=0"`
	NumberOfEpisodes int     `json:"numberOfEpisodes,omitempty" validate:"omitempty,gte=0"`
	VoteAverage      float64 `json:"voteAverage,omitempty" validate:"omitempty,gte=0,lte=10"`
}
