package client

// TmdbGenre là thể loại theo format TMDB
type TmdbGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TmdbListItem là một kết quả trong danh sách trending/search/discover/recommendations.
// Movie dùng title/release_date, TV dùng name/first_air_date.
type TmdbListItem struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
	Popularity   float64 `json:"popularity"`
}

// TmdbPage là một trang kết quả danh sách
type TmdbPage struct {
	Page         int            `json:"page"`
	Results      []TmdbListItem `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int64          `json:"total_results"`
}

// TmdbCastMember là một thành viên cast trong credits
type TmdbCastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// TmdbCredits là response của endpoint credits
type TmdbCredits struct {
	Cast []TmdbCastMember `json:"cast"`
}

// TmdbExternalIDs là response của endpoint external_ids
type TmdbExternalIDs struct {
	ImdbID string `json:"imdb_id"`
}

// TmdbGenreList là response của endpoint genre list
type TmdbGenreList struct {
	Genres []TmdbGenre `json:"genres"`
}

// TmdbMovieDetails là chi tiết một phim lẻ
type TmdbMovieDetails struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Overview     string      `json:"overview"`
	Tagline      string      `json:"tagline"`
	PosterPath   string      `json:"poster_path"`
	BackdropPath string      `json:"backdrop_path"`
	ReleaseDate  string      `json:"release_date"`
	Runtime      int         `json:"runtime"`
	Genres       []TmdbGenre `json:"genres"`
	VoteAverage  float64     `json:"vote_average"`
	VoteCount    int64       `json:"vote_count"`
}

// TmdbSeasonSummary là thông tin tóm tắt một mùa trong chi tiết series
type TmdbSeasonSummary struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
}

// TmdbSeriesDetails là chi tiết một phim bộ
type TmdbSeriesDetails struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Overview         string              `json:"overview"`
	Tagline          string              `json:"tagline"`
	PosterPath       string              `json:"poster_path"`
	BackdropPath     string              `json:"backdrop_path"`
	FirstAirDate     string              `json:"first_air_date"`
	NumberOfSeasons  int                 `json:"number_of_seasons"`
	NumberOfEpisodes int                 `json:"number_of_episodes"`
	Genres           []TmdbGenre         `json:"genres"`
	VoteAverage      float64             `json:"vote_average"`
	VoteCount        int64               `json:"vote_count"`
	Seasons          []TmdbSeasonSummary `json:"seasons"`
}

// TmdbEpisode là một tập phim trong chi tiết mùa
type TmdbEpisode struct {
	ID            int64   `json:"id"`
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     string  `json:"still_path"`
	AirDate       string  `json:"air_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
}

// TmdbSeasonDetails là chi tiết một mùa phim kèm danh sách tập
type TmdbSeasonDetails struct {
	ID           int64         `json:"id"`
	SeasonNumber int           `json:"season_number"`
	Name         string        `json:"name"`
	Overview     string        `json:"overview"`
	PosterPath   string        `json:"poster_path"`
	AirDate      string        `json:"air_date"`
	Episodes     []TmdbEpisode `json:"episodes"`
}

// TmdbMovieBundle gom kết quả của 4 request chi tiết phim lẻ chạy song song
type TmdbMovieBundle struct {
	Details         TmdbMovieDetails `json:"details"`
	Cast            []TmdbCastMember `json:"cast"`
	Recommendations []TmdbListItem   `json:"recommendations"`
	ImdbID          string           `json:"imdbId"`
}

// TmdbSeriesBundle gom kết quả của 4 request chi tiết phim bộ chạy song song
type TmdbSeriesBundle struct {
	Details         TmdbSeriesDetails `json:"details"`
	Cast            []TmdbCastMember  `json:"cast"`
	Recommendations []TmdbListItem    `json:"recommendations"`
	ImdbID          string            `json:"imdbId"`
}
