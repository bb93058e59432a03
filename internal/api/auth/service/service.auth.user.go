// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"

	authdto "cine_catalog/internal/api/auth/dto"
	models "cine_catalog/internal/api/auth/models"
	basesvc "cine_catalog/internal/api/base/service"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
	"cine_catalog/internal/logger"
	"cine_catalog/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// issueToken tạo access token cho user theo config hiện tại
func (s *UserService) issueToken(userID primitive.ObjectID) (string, error) {
	cfg := global.MongoDB_ServerConfig
	token, err := utility.CreateToken(cfg.JwtSecret, userID.Hex(), cfg.JwtExpireDays)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Failed to issue token", common.StatusInternalServerError, err)
	}
	return token, nil
}

// Register đăng ký tài khoản mới với vai trò mặc định là user.
// Username và email trùng trả về lỗi 400.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (models.User, string, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return models.User{}, "", common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Role:      models.RoleUser,
		Watchlist: []models.WatchlistEntry{},
		Favorites: []models.FavoriteEntry{},
	}

	inserted, err := s.InsertOne(ctx, user)
	if err != nil {
		if common.IsDuplicate(err) {
			return models.User{}, "", common.NewError(common.ErrCodeValidationInput, "User already exists", common.StatusBadRequest, nil)
		}
		return models.User{}, "", err
	}

	token, err := s.issueToken(inserted.ID)
	if err != nil {
		return models.User{}, "", err
	}

	logger.WithModule("auth").WithField("user_id", inserted.ID.Hex()).Info("✅ User registered")
	return inserted, token, nil
}

// Login xác thực email/password và trả về user kèm token.
// Email không tồn tại và sai mật khẩu trả về cùng một lỗi 401.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, string, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, "", common.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !utility.CheckPassword(user.Password, input.Password) {
		return models.User{}, "", common.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}

	logger.WithModule("auth").WithField("user_id", user.ID.Hex()).Info("✅ User logged in")
	return user, token, nil
}

// GetProfile trả về thông tin user theo id
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, common.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// profileUpdateSet xây map $set từ input, chỉ các field có giá trị.
// Password mới sẽ được băm lại trước khi lưu.
func profileUpdateSet(input *authdto.UserUpdateProfileInput) (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if input.Username != "" {
		set["username"] = input.Username
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.ProfilePicture != "" {
		set["profilePicture"] = input.ProfilePicture
	}
	if input.Password != "" {
		hashed, err := utility.HashPassword(input.Password)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
		}
		set["password"] = hashed
	}
	return set, nil
}

// UpdateProfile cập nhật hồ sơ user, chỉ các field có giá trị
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserUpdateProfileInput) (models.User, error) {
	set, err := profileUpdateSet(input)
	if err != nil {
		return models.User{}, err
	}

	if len(set) == 0 {
		return s.GetProfile(ctx, userID)
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if common.IsDuplicate(err) {
			return models.User{}, common.NewError(common.ErrCodeValidationInput, "Username or email already in use", common.StatusBadRequest, nil)
		}
		if isNotFound(err) {
			return models.User{}, common.ErrUserNotFound
		}
		return models.User{}, err
	}
	return updated, nil
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
