package accountsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "cine_catalog/internal/api/auth/models"
	catalogmodels "cine_catalog/internal/api/catalog/models"
)

// ContentResolver tra cứu content theo loại và id.
// Content không còn tồn tại trong catalog thì trả về nil.
type ContentResolver func(contentType string, contentID primitive.ObjectID) interface{}

// PopulatedWatchlistEntry là mục watchlist kèm content đã resolve
type PopulatedWatchlistEntry struct {
	models.WatchlistEntry
	Content interface{} `json:"content,omitempty"`
}

// PopulatedFavoriteEntry là mục favorites kèm content đã resolve
type PopulatedFavoriteEntry struct {
	models.FavoriteEntry
	Content interface{} `json:"content,omitempty"`
}

// ProfileView là hồ sơ trả về cho client: user với watchlist và favorites
// đã được gắn document movie/series tương ứng
type ProfileView struct {
	models.User
	Watchlist []PopulatedWatchlistEntry `json:"watchlist"`
	Favorites []PopulatedFavoriteEntry  `json:"favorites"`
}

// BuildProfileView gắn content vào từng mục danh sách của user.
// Content đã bị xóa khỏi catalog thì mục vẫn giữ nguyên, content là nil.
func BuildProfileView(user models.User, resolve ContentResolver) ProfileView {
	watchlist := make([]PopulatedWatchlistEntry, 0, len(user.Watchlist))
	for _, entry := range user.Watchlist {
		watchlist = append(watchlist, PopulatedWatchlistEntry{
			WatchlistEntry: entry,
			Content:        resolve(entry.ContentType, entry.ContentID),
		})
	}

	favorites := make([]PopulatedFavoriteEntry, 0, len(user.Favorites))
	for _, entry := range user.Favorites {
		favorites = append(favorites, PopulatedFavoriteEntry{
			FavoriteEntry: entry,
			Content:       resolve(entry.ContentType, entry.ContentID),
		})
	}

	return ProfileView{User: user, Watchlist: watchlist, Favorites: favorites}
}

// resolver tra cứu movie/series theo loại content, lỗi coi như không tìm thấy
func (s *AccountService) resolver(ctx context.Context) ContentResolver {
	return func(contentType string, contentID primitive.ObjectID) interface{} {
		switch contentType {
		case catalogmodels.ContentTypeMovie:
			movie, err := s.movies.FindOneById(ctx, contentID)
			if err != nil {
				return nil
			}
			return movie
		case catalogmodels.ContentTypeSeries:
			series, err := s.series.FindOneById(ctx, contentID)
			if err != nil {
				return nil
			}
			return series
		}
		return nil
	}
}

// PopulateProfile gắn content vào danh sách của một user đã đọc sẵn
func (s *AccountService) PopulateProfile(ctx context.Context, user models.User) ProfileView {
	return BuildProfileView(user, s.resolver(ctx))
}

// GetPopulatedProfile đọc user theo id và trả về hồ sơ với danh sách đã populate
func (s *AccountService) GetPopulatedProfile(ctx context.Context, userID primitive.ObjectID) (ProfileView, error) {
	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	return BuildProfileView(user, s.resolver(ctx)), nil
}
