// Package reviewsvc - service quản lý review và luồng kiểm duyệt.
package reviewsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "cine_catalog/internal/api/auth/models"
	basesvc "cine_catalog/internal/api/base/service"
	catalogmodels "cine_catalog/internal/api/catalog/models"
	catalogsvc "cine_catalog/internal/api/catalog/service"
	reviewdto "cine_catalog/internal/api/review/dto"
	"cine_catalog/internal/api/review/models"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
)

// ReviewService là cấu trúc chứa các phương thức liên quan đến review
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	movies *catalogsvc.MovieService
	series *catalogsvc.SeriesService
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	reviewCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}
	movieService, err := catalogsvc.NewMovieService()
	if err != nil {
		return nil, fmt.Errorf("failed to create movie service: %v", err)
	}
	seriesService, err := catalogsvc.NewSeriesService()
	if err != nil {
		return nil, fmt.Errorf("failed to create series service: %v", err)
	}

	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](reviewCollection),
		movies:               movieService,
		series:               seriesService,
	}, nil
}

// ensureContentExists kiểm tra content được review có trong database không
func (s *ReviewService) ensureContentExists(ctx context.Context, contentID primitive.ObjectID, contentType string) error {
	var err error
	switch contentType {
	case catalogmodels.ContentTypeMovie:
		_, err = s.movies.FindOneById(ctx, contentID)
	case catalogmodels.ContentTypeSeries:
		_, err = s.series.FindOneById(ctx, contentID)
	default:
		return common.NewError(common.ErrCodeValidationInput, "Invalid content type", common.StatusBadRequest, nil)
	}
	if err != nil {
		if isNotFound(err) {
			return common.NewError(common.ErrCodeDatabaseQuery, "Content not found", common.StatusNotFound, nil)
		}
		return err
	}
	return nil
}

// Create tạo review mới ở trạng thái chờ duyệt.
// Trả về lỗi 400 nếu user đã review content này rồi.
func (s *ReviewService) Create(ctx context.Context, user authmodels.User, input *reviewdto.ReviewCreateInput) (models.Review, error) {
	contentID, err := primitive.ObjectIDFromHex(input.ContentID)
	if err != nil {
		return models.Review{}, common.NewError(common.ErrCodeValidationFormat, "Invalid content id", common.StatusBadRequest, err)
	}
	if err := s.ensureContentExists(ctx, contentID, input.ContentType); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		UserID:      user.ID,
		ContentID:   contentID,
		ContentType: input.ContentType,
		Username:    user.Username,
		Rating:      input.Rating,
		ReviewText:  input.ReviewText,
		Approved:    false,
	}
	inserted, err := s.InsertOne(ctx, review)
	if err != nil {
		if common.IsDuplicate(err) {
			return models.Review{}, common.NewError(common.ErrCodeValidationInput, "You have already reviewed this content", common.StatusBadRequest, nil)
		}
		return models.Review{}, err
	}
	return inserted, nil
}

// ownUpdateSet xây map $set cho chủ review chỉnh sửa.
// Sửa nội dung thì phải duyệt lại nên approved luôn bị đưa về false.
func ownUpdateSet(input *reviewdto.ReviewUpdateInput) map[string]interface{} {
	set := map[string]interface{}{"approved": false}
	if input.Rating > 0 {
		set["rating"] = input.Rating
	}
	if input.ReviewText != "" {
		set["reviewText"] = input.ReviewText
	}
	return set
}

// UpdateOwn cập nhật review của chính user, đưa review về lại trạng thái chờ duyệt.
// Trả về lỗi 403 nếu review không thuộc về user.
func (s *ReviewService) UpdateOwn(ctx context.Context, userID primitive.ObjectID, reviewID primitive.ObjectID, input *reviewdto.ReviewUpdateInput) (models.Review, error) {
	review, err := s.FindOneById(ctx, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if review.UserID != userID {
		return models.Review{}, common.NewError(common.ErrCodeAuthRole, "Not authorized to update this review", common.StatusForbidden, nil)
	}

	return s.UpdateById(ctx, reviewID, &basesvc.UpdateData{Set: ownUpdateSet(input)})
}

// DeleteOwn xóa review của chính user.
// Trả về lỗi 403 nếu review không thuộc về user.
func (s *ReviewService) DeleteOwn(ctx context.Context, userID primitive.ObjectID, reviewID primitive.ObjectID) error {
	review, err := s.FindOneById(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return common.NewError(common.ErrCodeAuthRole, "Not authorized to delete this review", common.StatusForbidden, nil)
	}
	return s.DeleteById(ctx, reviewID)
}

// FindApprovedByContent trả về các review đã duyệt của một content, mới nhất trước
func (s *ReviewService) FindApprovedByContent(ctx context.Context, contentID primitive.ObjectID) ([]models.Review, error) {
	filter := bson.M{"contentId": contentID, "approved": true}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// FindByUser trả về tất cả review của một user, mới nhất trước
func (s *ReviewService) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// pendingFindOptions sắp review chờ duyệt mới nhất trước, cùng chiều với
// các danh sách review còn lại
func pendingFindOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// FindPending trả về các review chờ duyệt, mới nhất trước
func (s *ReviewService) FindPending(ctx context.Context) ([]models.Review, error) {
	return s.Find(ctx, bson.M{"approved": false}, pendingFindOptions())
}

// Approve duyệt một review. Duyệt review đã duyệt rồi là no-op.
func (s *ReviewService) Approve(ctx context.Context, reviewID primitive.ObjectID) (models.Review, error) {
	return s.UpdateById(ctx, reviewID, &basesvc.UpdateData{
		Set: map[string]interface{}{"approved": true},
	})
}

// CountPending đếm số review đang chờ duyệt
func (s *ReviewService) CountPending(ctx context.Context) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"approved": false})
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
