// Package middleware chứa các Fiber middleware của ứng dụng (xác thực, phân quyền).
package middleware

import (
	"strings"
	"sync"
	"time"

	authmodels "cine_catalog/internal/api/auth/models"
	authsvc "cine_catalog/internal/api/auth/service"
	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
	"cine_catalog/internal/logger"
	"cine_catalog/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthManager quản lý xác thực với cache để giảm truy vấn database.
// Token đã xác thực được cache 5 phút theo chuỗi token.
type AuthManager struct {
	userService *authsvc.UserService
	cache       *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về singleton AuthManager
func GetAuthManager() (*AuthManager, error) {
	var initErr error
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			initErr = err
			return
		}
		authManager = &AuthManager{
			userService: userService,
			cache:       utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return authManager, nil
}

// respondAuthError trả về lỗi xác thực dạng {"message": "..."}
func respondAuthError(c fiber.Ctx, err error) error {
	if appErr, ok := err.(*common.Error); ok {
		return basehdl.JSONResponse(c, appErr.StatusCode, fiber.Map{"message": appErr.Message})
	}
	return basehdl.JSONResponse(c, common.StatusUnauthorized, fiber.Map{"message": "Not authorized, token failed"})
}

// resolveUser xác thực token và trả về user, ưu tiên cache
func (m *AuthManager) resolveUser(c fiber.Ctx, tokenString string) (authmodels.User, error) {
	if cached, found := m.cache.Get("auth:" + tokenString); found {
		if user, ok := cached.(authmodels.User); ok {
			return user, nil
		}
	}

	userID, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, tokenString)
	if err != nil {
		return authmodels.User{}, common.ErrTokenInvalid
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return authmodels.User{}, common.ErrTokenInvalid
	}

	user, err := m.userService.FindOneById(c.Context(), objID)
	if err != nil {
		return authmodels.User{}, common.ErrTokenInvalid
	}

	m.cache.Set("auth:"+tokenString, user)
	return user, nil
}

// Protect middleware xác thực JWT từ header Authorization (Bearer ...).
// Set vào Locals: user_id, user, user_role cho các handler phía sau.
func Protect() fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := GetAuthManager()
		if err != nil {
			logger.GetAppLogger().WithError(err).Error("Auth manager initialization failed")
			return respondAuthError(c, common.NewError(common.ErrCodeInternalServer, "Server error", common.StatusInternalServerError, err))
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return respondAuthError(c, common.ErrTokenMissing)
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			return respondAuthError(c, common.ErrTokenMissing)
		}

		user, err := manager.resolveUser(c, tokenString)
		if err != nil {
			return respondAuthError(c, err)
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("user_role", user.Role)
		return c.Next()
	}
}

// RequireAdmin middleware chặn các user không có vai trò admin.
// Phải đặt sau Protect trong chuỗi middleware.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			return respondAuthError(c, common.ErrTokenMissing)
		}
		if !user.IsAdmin() {
			return respondAuthError(c, common.ErrNotAdmin)
		}
		return c.Next()
	}
}
