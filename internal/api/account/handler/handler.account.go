// Package accounthdl xử lý các request watchlist, favorites và tiến độ xem.
package accounthdl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	accountdto "cine_catalog/internal/api/account/dto"
	accountsvc "cine_catalog/internal/api/account/service"
	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AccountHandler xử lý các request danh sách cá nhân của user
type AccountHandler struct {
	basehdl.BaseHandler
	account *accountsvc.AccountService
}

// NewAccountHandler tạo instance mới của AccountHandler
func NewAccountHandler() (*AccountHandler, error) {
	accountService, err := accountsvc.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %v", err)
	}
	return &AccountHandler{
		account: accountService,
	}, nil
}

// HandleAddToWatchlist thêm content vào watchlist của user hiện tại
func (h *AccountHandler) HandleAddToWatchlist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		var input accountdto.ContentRefInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		watchlist, err := h.account.AddToWatchlist(c.Context(), userID, input.TmdbID, input.ContentType)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("create", "watchlist", userID.Hex(), c, map[string]interface{}{"tmdbId": input.TmdbID})
		return h.HandleResponse(c, common.StatusOK, watchlist)
	})
}

// HandleRemoveFromWatchlist xóa một mục watchlist theo entry id
func (h *AccountHandler) HandleRemoveFromWatchlist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		entryID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		watchlist, err := h.account.RemoveFromWatchlist(c.Context(), userID, entryID)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, watchlist)
	})
}

// HandleUpdateProgress cập nhật tiến độ xem của một content trong watchlist
func (h *AccountHandler) HandleUpdateProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		var input accountdto.ProgressUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		contentID, err := primitive.ObjectIDFromHex(input.ContentID)
		if err != nil {
			return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, "Invalid content id", common.StatusBadRequest, err))
		}

		watchlist, err := h.account.UpdateProgress(c.Context(), userID, contentID, input.Progress)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, watchlist)
	})
}

// HandleAddToFavorites thêm content vào favorites của user hiện tại
func (h *AccountHandler) HandleAddToFavorites(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		var input accountdto.ContentRefInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		favorites, err := h.account.AddToFavorites(c.Context(), userID, input.TmdbID, input.ContentType)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("create", "favorites", userID.Hex(), c, map[string]interface{}{"tmdbId": input.TmdbID})
		return h.HandleResponse(c, common.StatusOK, favorites)
	})
}

// HandleRemoveFromFavorites xóa một mục favorites theo entry id
func (h *AccountHandler) HandleRemoveFromFavorites(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		entryID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		favorites, err := h.account.RemoveFromFavorites(c.Context(), userID, entryID)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, favorites)
	})
}
