// Package adminhdl xử lý các request quản trị: thống kê, kiểm duyệt review, quản lý user.
package adminhdl

import (
	"fmt"

	adminsvc "cine_catalog/internal/api/admin/service"
	basehdl "cine_catalog/internal/api/base/handler"
	"cine_catalog/internal/common"
	"cine_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các request quản trị hệ thống
type AdminHandler struct {
	basehdl.BaseHandler
	admin *adminsvc.AdminService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	adminService, err := adminsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	return &AdminHandler{
		admin: adminService,
	}, nil
}

// HandleStats trả về số liệu tổng quan của hệ thống
func (h *AdminHandler) HandleStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.admin.GetStats(c.Context())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, stats)
	})
}

// HandlePendingReviews trả về danh sách review chờ duyệt
func (h *AdminHandler) HandlePendingReviews(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reviews, err := h.admin.Reviews().FindPending(c.Context())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, reviews)
	})
}

// HandleApproveReview duyệt một review. Duyệt lại review đã duyệt là no-op.
func (h *AdminHandler) HandleApproveReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reviewID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		review, err := h.admin.Reviews().Approve(c.Context(), reviewID)
		if err != nil {
			return h.HandleError(c, err)
		}

		logger.LogModeration("approve", review.ID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, review)
	})
}

// HandleDeleteReview xóa một review bất kỳ (quyền admin)
func (h *AdminHandler) HandleDeleteReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reviewID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.admin.Reviews().DeleteById(c.Context(), reviewID); err != nil {
			return h.HandleError(c, err)
		}

		logger.LogModeration("delete", reviewID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"message": "Review removed"})
	})
}

// HandleListUsers trả về danh sách user theo trang (query page/limit)
func (h *AdminHandler) HandleListUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		users, err := h.admin.ListUsers(c.Context(), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleResponse(c, common.StatusOK, users)
	})
}

// HandleDeleteUser xóa một user thường. Không thể xóa admin.
func (h *AdminHandler) HandleDeleteUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.admin.DeleteUser(c.Context(), userID); err != nil {
			return h.HandleError(c, err)
		}

		logger.LogCRUD("delete", "users", userID.Hex(), c, nil)
		return h.HandleResponse(c, common.StatusOK, fiber.Map{"message": "User removed"})
	})
}
