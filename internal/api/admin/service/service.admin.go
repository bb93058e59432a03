// Package adminsvc - service thống kê và quản trị hệ thống.
package adminsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	authmodels "cine_catalog/internal/api/auth/models"
	authsvc "cine_catalog/internal/api/auth/service"
	basemodels "cine_catalog/internal/api/base/models"
	catalogsvc "cine_catalog/internal/api/catalog/service"
	reviewsvc "cine_catalog/internal/api/review/service"
	"cine_catalog/internal/common"
)

// Stats là số liệu tổng quan của hệ thống tại một thời điểm.
// Các count chạy song song nên không đảm bảo consistency giữa các số.
type Stats struct {
	Users          int64 `json:"users"`
	Movies         int64 `json:"movies"`
	Series         int64 `json:"series"`
	Reviews        int64 `json:"reviews"`
	PendingReviews int64 `json:"pendingReviews"`
}

// AdminService là cấu trúc chứa các phương thức quản trị
type AdminService struct {
	users   *authsvc.UserService
	movies  *catalogsvc.MovieService
	series  *catalogsvc.SeriesService
	reviews *reviewsvc.ReviewService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	movieService, err := catalogsvc.NewMovieService()
	if err != nil {
		return nil, fmt.Errorf("failed to create movie service: %v", err)
	}
	seriesService, err := catalogsvc.NewSeriesService()
	if err != nil {
		return nil, fmt.Errorf("failed to create series service: %v", err)
	}
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	return &AdminService{
		users:   userService,
		movies:  movieService,
		series:  seriesService,
		reviews: reviewService,
	}, nil
}

// Reviews trả về review service dùng chung cho các thao tác kiểm duyệt
func (s *AdminService) Reviews() *reviewsvc.ReviewService {
	return s.reviews
}

// GetStats đếm song song số lượng user, movie, series, review và review chờ duyệt
func (s *AdminService) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.users.CountDocuments(gctx, bson.M{})
		stats.Users = count
		return err
	})
	g.Go(func() error {
		count, err := s.movies.CountDocuments(gctx, bson.M{})
		stats.Movies = count
		return err
	})
	g.Go(func() error {
		count, err := s.series.CountDocuments(gctx, bson.M{})
		stats.Series = count
		return err
	})
	g.Go(func() error {
		count, err := s.reviews.CountDocuments(gctx, bson.M{})
		stats.Reviews = count
		return err
	})
	g.Go(func() error {
		count, err := s.reviews.CountPending(gctx)
		stats.PendingReviews = count
		return err
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ListUsers trả về user trong hệ thống theo trang, mới nhất trước
func (s *AdminService) ListUsers(ctx context.Context, page int64, limit int64) (*basemodels.PaginateResult[authmodels.User], error) {
	return s.users.FindWithPagination(ctx, bson.M{}, page, limit)
}

// DeleteUser xóa một user thường. Không cho phép xóa user có vai trò admin.
func (s *AdminService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.users.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return common.NewError(common.ErrCodeBusinessOperation, "Cannot delete admin users", common.StatusBadRequest, nil)
	}
	return s.users.DeleteById(ctx, userID)
}
