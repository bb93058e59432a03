// Package accountdto chứa các cấu trúc input của domain account.
package accountdto

// ContentRefInput trỏ đến một content TMDB, dùng khi thêm vào watchlist/favorites.
// Content sẽ được ingest vào database nếu chưa có.
type ContentRefInput struct {
	TmdbID      int64  `json:"tmdbId" validate:"required,gt=0"`
	ContentType string `json:"contentType" validate:"required,oneof=Movie Series"`
}

// ProgressUpdateInput là dữ liệu cập nhật tiến độ xem của một mục trong watchlist
type ProgressUpdateInput struct {
	ContentID string `json:"contentId" validate:"required,len=24,hexadecimal"`
	Progress  int    `json:"progress" validate:"gte=0,lte=100"`
}
