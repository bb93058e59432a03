// Package catalogsvc - service quản lý catalog phim lẻ và phim bộ.
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "cine_catalog/internal/api/base/service"
	"cine_catalog/internal/api/catalog/models"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// MovieService là cấu trúc chứa các phương thức liên quan đến phim lẻ
type MovieService struct {
	*basesvc.BaseServiceMongoImpl[models.Movie]
}

// NewMovieService tạo mới MovieService
func NewMovieService() (*MovieService, error) {
	movieCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Movies)
	if !exist {
		return nil, fmt.Errorf("failed to get movies collection: %v", common.ErrNotFound)
	}

	return &MovieService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Movie](movieCollection),
	}, nil
}

// FindByTmdbID tìm phim theo TMDB id.
// Trả về common.ErrNotFound nếu phim chưa có trong catalog.
func (s *MovieService) FindByTmdbID(ctx context.Context, tmdbID int64) (models.Movie, error) {
	return s.FindOne(ctx, bson.M{"tmdbId": tmdbID}, nil)
}

// ExistsByTmdbID kiểm tra phim đã có trong catalog chưa
func (s *MovieService) ExistsByTmdbID(ctx context.Context, tmdbID int64) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"tmdbId": tmdbID})
}
