package authhdl

import (
	"fmt"

	accountsvc "cine_catalog/internal/api/account/service"
	authdto "cine_catalog/internal/api/auth/dto"
	models "cine_catalog/internal/api/auth/models"
	authsvc "cine_catalog/internal/api/auth/service"
	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	basehdl.BaseHandler
	userService    *authsvc.UserService
	accountService *accountsvc.AccountService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	accountService, err := accountsvc.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %v", err)
	}
	return &UserHandler{
		userService:    userService,
		accountService: accountService,
	}, nil
}

// authPayload là body trả về sau register/login: thông tin user kèm token
func authPayload(user models.User, token string) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"token":    token,
	}
}

// HandleRegister đăng ký tài khoản mới và trả về token
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		user, token, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogAuth("register", c, map[string]interface{}{"userId": user.ID.Hex()})
		return h.HandleResponse(c, common.StatusCreated, authPayload(user, token))
	})
}

// HandleLogin đăng nhập bằng email và mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		user, token, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
			return h.HandleError(c, err)
		}

		logger.LogAuth("login", c, map[string]interface{}{"userId": user.ID.Hex()})
		return h.HandleResponse(c, common.StatusOK, authPayload(user, token))
	})
}

// HandleGetProfile lấy profile của người dùng hiện tại,
// watchlist và favorites được trả về kèm content tương ứng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		profile, err := h.accountService.GetPopulatedProfile(c.Context(), userID)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleResponse(c, common.StatusOK, profile)
	})
}

// HandleUpdateProfile cập nhật thông tin profile của người dùng hiện tại
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		var input authdto.UserUpdateProfileInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		user, err := h.userService.UpdateProfile(c.Context(), userID, &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("update", "users", user.ID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, h.accountService.PopulateProfile(c.Context(), user))
	})
}
