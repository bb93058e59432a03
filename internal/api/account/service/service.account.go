package accountsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "cine_catalog/internal/api/auth/models"
	authsvc "cine_catalog/internal/api/auth/service"
	basesvc "cine_catalog/internal/api/base/service"
	catalogsvc "cine_catalog/internal/api/catalog/service"
	"cine_catalog/internal/common"
)

// AccountService quản lý watchlist và favorites nhúng trong document user.
// Content được ingest từ TMDB trước khi thêm vào danh sách.
type AccountService struct {
	users  *authsvc.UserService
	ingest *catalogsvc.IngestService
	movies *catalogsvc.MovieService
	series *catalogsvc.SeriesService
}

// NewAccountService tạo instance mới của AccountService
func NewAccountService() (*AccountService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	ingestService, err := catalogsvc.NewIngestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest service: %v", err)
	}
	movieService, err := catalogsvc.NewMovieService()
	if err != nil {
		return nil, fmt.Errorf("failed to create movie service: %v", err)
	}
	seriesService, err := catalogsvc.NewSeriesService()
	if err != nil {
		return nil, fmt.Errorf("failed to create series service: %v", err)
	}
	return &AccountService{
		users:  userService,
		ingest: ingestService,
		movies: movieService,
		series: seriesService,
	}, nil
}

// AddToWatchlist ingest content nếu cần rồi thêm vào watchlist của user.
// Trả về lỗi 400 nếu content đã có trong watchlist.
func (s *AccountService) AddToWatchlist(ctx context.Context, userID primitive.ObjectID, tmdbID int64, contentType string) ([]models.WatchlistEntry, error) {
	contentID, err := s.ingest.EnsureContent(ctx, contentType, tmdbID, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if WatchlistContains(user.Watchlist, contentID) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Already in watchlist", common.StatusBadRequest, nil)
	}

	entry := NewWatchlistEntry(contentID, contentType)
	updated, err := s.users.UpdateById(ctx, userID, &basesvc.UpdateData{
		Push: map[string]interface{}{"watchlist": entry},
	})
	if err != nil {
		return nil, err
	}
	return updated.Watchlist, nil
}

// RemoveFromWatchlist xóa một mục watchlist theo entry id.
// Entry không tồn tại thì coi như no-op, vẫn trả về danh sách hiện tại.
func (s *AccountService) RemoveFromWatchlist(ctx context.Context, userID primitive.ObjectID, entryID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	updated, err := s.users.UpdateById(ctx, userID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"watchlist": bson.M{"_id": entryID}},
	})
	if err != nil {
		return nil, err
	}
	return updated.Watchlist, nil
}

// UpdateProgress cập nhật tiến độ xem của một content trong watchlist.
// Trả về lỗi 404 nếu content không có trong watchlist.
func (s *AccountService) UpdateProgress(ctx context.Context, userID primitive.ObjectID, contentID primitive.ObjectID, progress int) ([]models.WatchlistEntry, error) {
	filter := bson.M{
		"_id":                 userID,
		"watchlist.contentId": contentID,
	}
	updated, err := s.users.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"watchlist.$.progress": progress},
	}, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Content not in watchlist", common.StatusNotFound, nil)
		}
		return nil, err
	}
	return updated.Watchlist, nil
}

// AddToFavorites ingest content nếu cần rồi thêm vào favorites của user.
// Trả về lỗi 400 nếu content đã có trong favorites.
func (s *AccountService) AddToFavorites(ctx context.Context, userID primitive.ObjectID, tmdbID int64, contentType string) ([]models.FavoriteEntry, error) {
	contentID, err := s.ingest.EnsureContent(ctx, contentType, tmdbID, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if FavoritesContains(user.Favorites, contentID) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Already in favorites", common.StatusBadRequest, nil)
	}

	entry := NewFavoriteEntry(contentID, contentType)
	updated, err := s.users.UpdateById(ctx, userID, &basesvc.UpdateData{
		Push: map[string]interface{}{"favorites": entry},
	})
	if err != nil {
		return nil, err
	}
	return updated.Favorites, nil
}

// RemoveFromFavorites xóa một mục favorites theo entry id, no-op nếu không tồn tại
func (s *AccountService) RemoveFromFavorites(ctx context.Context, userID primitive.ObjectID, entryID primitive.ObjectID) ([]models.FavoriteEntry, error) {
	updated, err := s.users.UpdateById(ctx, userID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"favorites": bson.M{"_id": entryID}},
	})
	if err != nil {
		return nil, err
	}
	return updated.Favorites, nil
}

// isNotFound kiểm tra err có phải lỗi 404 của hệ thống
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*common.Error); ok {
		return appErr.StatusCode == common.StatusNotFound
	}
	return false
}
