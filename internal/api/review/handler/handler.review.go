// Package reviewhdl xử lý các request review của user.
package reviewhdl

import (
	"fmt"

	authmodels "cine_catalog/internal/api/auth/models"
	basehdl "cine_catalog/internal/api/base/handler"
	reviewdto "cine_catalog/internal/api/review/dto"
	reviewsvc "cine_catalog/internal/api/review/service"
	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ReviewHandler xử lý các request đánh giá content
type ReviewHandler struct {
	basehdl.BaseHandler
	reviews *reviewsvc.ReviewService
}

// NewReviewHandler tạo instance mới của ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	return &ReviewHandler{
		reviews: reviewService,
	}, nil
}

// currentUser lấy user từ Locals (do auth middleware set)
func (h *ReviewHandler) currentUser(c fiber.Ctx) (authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return authmodels.User{}, common.ErrTokenMissing
	}
	return user, nil
}

// HandleListByContent trả về các review đã duyệt của một content (public)
func (h *ReviewHandler) HandleListByContent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		contentID, err := h.ParseObjectIDParam(c, "contentId")
		if err != nil {
			return h.HandleError(c, err)
		}

		reviews, err := h.reviews.FindApprovedByContent(c.Context(), contentID)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, reviews)
	})
}

// HandleListMine trả về tất cả review của user hiện tại, kể cả chưa duyệt
func (h *ReviewHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		reviews, err := h.reviews.FindByUser(c.Context(), userID)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, reviews)
	})
}

// HandleCreate tạo review mới ở trạng thái chờ duyệt
func (h *ReviewHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, err := h.currentUser(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		var input reviewdto.ReviewCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		review, err := h.reviews.Create(c.Context(), user, &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("create", "reviews", review.ID.Hex(), c, map[string]interface{}{"contentId": input.ContentID})
		return h.HandleResponse(c, common.StatusCreated, review)
	})
}

// HandleUpdate cập nhật review của chính user (review quay về trạng thái chờ duyệt)
func (h *ReviewHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		reviewID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		var input reviewdto.ReviewUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		review, err := h.reviews.UpdateOwn(c.Context(), userID, reviewID, &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("update", "reviews", review.ID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, review)
	})
}

// HandleDelete xóa review của chính user
func (h *ReviewHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		reviewID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.reviews.DeleteOwn(c.Context(), userID, reviewID); err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("delete", "reviews", reviewID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"message": "Review removed"})
	})
}
