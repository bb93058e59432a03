package catalogsvc

import (
	"context"
	"fmt"

	basesvc "cine_catalog/internal/api/base/service"
	"cine_catalog/internal/api/catalog/models"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
	"cine_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeriesService là cấu trúc chứa các phương thức liên quan đến phim bộ.
// Mỗi series sở hữu các document Season riêng (collection seasons).
type SeriesService struct {
	*basesvc.BaseServiceMongoImpl[models.Series]
	seasonService *basesvc.BaseServiceMongoImpl[models.Season]
}

// NewSeriesService tạo mới SeriesService
func NewSeriesService() (*SeriesService, error) {
	seriesCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Series)
	if !exist {
		return nil, fmt.Errorf("failed to get series collection: %v", common.ErrNotFound)
	}
	seasonCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Seasons)
	if !exist {
		return nil, fmt.Errorf("failed to get seasons collection: %v", common.ErrNotFound)
	}

	return &SeriesService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Series](seriesCollection),
		seasonService:        basesvc.NewBaseServiceMongo[models.Season](seasonCollection),
	}, nil
}

// FindByTmdbID tìm series theo TMDB id
func (s *SeriesService) FindByTmdbID(ctx context.Context, tmdbID int64) (models.Series, error) {
	return s.FindOne(ctx, bson.M{"tmdbId": tmdbID}, nil)
}

// ExistsByTmdbID kiểm tra series đã có trong catalog chưa
func (s *SeriesService) ExistsByTmdbID(ctx context.Context, tmdbID int64) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"tmdbId": tmdbID})
}

// UpsertSeason lưu một mùa phim, tạo mới hoặc cập nhật theo (seriesId, seasonNumber)
func (s *SeriesService) UpsertSeason(ctx context.Context, season models.Season) (models.Season, error) {
	filter := bson.M{
		"seriesId":     season.SeriesID,
		"seasonNumber": season.SeasonNumber,
	}
	return s.seasonService.Upsert(ctx, filter, season)
}

// FindSeasons trả về các mùa đã lưu của một series, sắp theo seasonNumber
func (s *SeriesService) FindSeasons(ctx context.Context, seriesID primitive.ObjectID) ([]models.Season, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seasonNumber", Value: 1}})
	return s.seasonService.Find(ctx, bson.M{"seriesId": seriesID}, opts)
}

// DeleteWithSeasons xóa series và toàn bộ document Season thuộc về nó
func (s *SeriesService) DeleteWithSeasons(ctx context.Context, seriesID primitive.ObjectID) error {
	if err := s.DeleteById(ctx, seriesID); err != nil {
		return err
	}

	deleted, err := s.seasonService.DeleteMany(ctx, bson.M{"seriesId": seriesID}, nil)
	if err != nil {
		// Series đã xóa xong, seasons mồ côi chỉ ghi log
		logger.GetAppLogger().WithError(err).WithField("series_id", seriesID.Hex()).Warn("Failed to delete seasons of removed series")
		return nil
	}
	if deleted > 0 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"series_id": seriesID.Hex(),
			"seasons":   deleted,
		}).Info("Removed seasons of deleted series")
	}
	return nil
}
