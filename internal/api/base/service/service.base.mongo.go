// Package basesvc chứa base service generic thao tác MongoDB cho tất cả các model.
// Các service domain (movie, series, user, review...) nhúng BaseServiceMongoImpl
// và chỉ viết thêm các nghiệp vụ riêng.
package basesvc

import (
	"context"
	"errors"
	"time"

	"cine_catalog/internal/api/base/models"
	"cine_catalog/internal/common"
	"cine_catalog/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản thao tác với MongoDB
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	InsertMany(ctx context.Context, data []T) ([]T, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id interface{}) (T, error)
	FindManyByIds(ctx context.Context, ids []interface{}) ([]T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64) (*models.PaginateResult[T], error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error)
	UpdateById(ctx context.Context, id interface{}, update interface{}) (T, error)
	DeleteOne(ctx context.Context, filter interface{}, opts *options.DeleteOptions) error
	DeleteMany(ctx context.Context, filter interface{}, opts *options.DeleteOptions) (int64, error)
	DeleteById(ctx context.Context, id interface{}) error
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error)
	FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (T, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi insert (upsert tạo mới)
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	Pull        map[string]interface{} `bson:"$pull,omitempty"`        // Các trường cần loại khỏi array
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Các trường cần thêm vào set
}

// ToUpdateData chuyển struct thành UpdateData với thao tác $set
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}
	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid data format", common.StatusBadRequest, err)
	}
	return &UpdateData{Set: dataMap}, nil
}

// BaseServiceMongoImpl là implementation của BaseServiceMongo
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo mới BaseServiceMongoImpl trên một collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về *mongo.Collection bên dưới (dùng cho các truy vấn đặc thù)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// ======================= CREATE =======================

// InsertOne thêm một document mới, tự động gán createdAt/updatedAt (UnixMilli).
// Các field string rỗng bị loại bỏ để không đụng sparse unique index
// (ví dụ: imdbId chưa có thì không ghi "" vào document).
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "Invalid data format", common.StatusBadRequest, err)
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	for key, value := range dataMap {
		if str, ok := value.(string); ok && str == "" {
			delete(dataMap, key)
		}
	}
	delete(dataMap, "_id") // để driver tự sinh ObjectID

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var inserted T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return inserted, nil
}

// InsertMany thêm nhiều documents, tự động gán timestamps cho từng document
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}

	now := time.Now().UnixMilli()
	docs := make([]interface{}, 0, len(data))
	for _, item := range data {
		dataMap, err := utility.ToMap(item)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid data format", common.StatusBadRequest, err)
		}
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		delete(dataMap, "_id")
		docs = append(docs, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return s.FindManyByIds(ctx, result.InsertedIDs)
}

// ======================= READ =======================

// FindOne tìm một document theo filter.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById tìm document theo _id
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id interface{}) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều documents theo danh sách _id
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []interface{}) ([]T, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Find tìm tất cả documents khớp filter
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindWithPagination tìm documents có phân trang.
// Page bắt đầu từ 1, limit mặc định 10 và tối đa 100.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64) (*models.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &models.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// CountDocuments đếm số documents khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct trả về danh sách giá trị duy nhất của một field
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// DocumentExists kiểm tra document khớp filter có tồn tại không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// ======================= UPDATE =======================

// buildUpdateDocument chuyển update input thành update document hợp lệ,
// tự động gán updatedAt vào $set
func buildUpdateDocument(update interface{}) (bson.M, error) {
	now := time.Now().UnixMilli()

	switch u := update.(type) {
	case *UpdateData:
		doc := bson.M{}
		if u.Set == nil {
			u.Set = map[string]interface{}{}
		}
		u.Set["updatedAt"] = now
		doc["$set"] = u.Set
		if len(u.SetOnInsert) > 0 {
			doc["$setOnInsert"] = u.SetOnInsert
		}
		if len(u.Unset) > 0 {
			doc["$unset"] = u.Unset
		}
		if len(u.Push) > 0 {
			doc["$push"] = u.Push
		}
		if len(u.Pull) > 0 {
			doc["$pull"] = u.Pull
		}
		if len(u.AddToSet) > 0 {
			doc["$addToSet"] = u.AddToSet
		}
		return doc, nil
	case bson.M:
		// Đã là update document với toán tử ($set, $push...)
		set, ok := u["$set"].(bson.M)
		if !ok {
			set = bson.M{}
		}
		set["updatedAt"] = now
		u["$set"] = set
		return u, nil
	default:
		// Struct thường: convert toàn bộ thành $set
		dataMap, err := utility.ToMap(update)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid data format", common.StatusBadRequest, err)
		}
		delete(dataMap, "_id")
		delete(dataMap, "createdAt")
		dataMap["updatedAt"] = now
		return bson.M{"$set": dataMap}, nil
	}
}

// UpdateOne cập nhật một document khớp filter và trả về document sau cập nhật.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	updateDoc, err := buildUpdateDocument(update)
	if err != nil {
		return zero, err
	}

	result, err := s.collection.UpdateOne(ctx, filter, updateDoc, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 && result.UpsertedID == nil {
		return zero, common.ErrNotFound
	}

	if result.UpsertedID != nil {
		return s.FindOneById(ctx, result.UpsertedID)
	}
	return s.FindOne(ctx, filter, nil)
}

// UpdateMany cập nhật nhiều documents, trả về số lượng đã sửa
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	updateDoc, err := buildUpdateDocument(update)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.UpdateMany(ctx, filter, updateDoc, opts)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// UpdateById cập nhật document theo _id
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id interface{}, update interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update, nil)
}

// FindOneAndUpdate tìm và cập nhật một document, trả về document sau cập nhật
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var result T

	updateDoc, err := buildUpdateDocument(update)
	if err != nil {
		return result, err
	}

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	opts.SetReturnDocument(options.After)

	err = s.collection.FindOneAndUpdate(ctx, filter, updateDoc, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// Upsert cập nhật document khớp filter, tạo mới nếu chưa tồn tại
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "Invalid data format", common.StatusBadRequest, err)
	}
	delete(dataMap, "_id")
	delete(dataMap, "createdAt")

	update := &UpdateData{
		Set:         dataMap,
		SetOnInsert: map[string]interface{}{"createdAt": time.Now().UnixMilli()},
	}

	return s.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetUpsert(true))
}

// ======================= DELETE =======================

// DeleteOne xóa một document khớp filter.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}, opts *options.DeleteOptions) error {
	result, err := s.collection.DeleteOne(ctx, filter, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa nhiều documents, trả về số lượng đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}, opts *options.DeleteOptions) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter, opts)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById xóa document theo _id
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id interface{}) error {
	return s.DeleteOne(ctx, bson.M{"_id": id}, nil)
}

// FindOneAndDelete tìm và xóa một document, trả về document trước khi xóa
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (T, error) {
	var result T
	err := s.collection.FindOneAndDelete(ctx, filter, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}
