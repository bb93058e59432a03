package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"cine_catalog/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo tất cả JSON responses hỗ trợ UTF-8 đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			_ = h.HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Unexpected server error: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse trả về response thành công với status code và payload
func (h *BaseHandler) HandleResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	return JSONResponse(c, statusCode, data)
}

// HandleError chuẩn hóa error response cho client.
// Body luôn có dạng {"message": "..."} với status code lấy từ *common.Error.
func (h *BaseHandler) HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"message": customErr.Message,
		})
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"message": err.Error(),
	})
}
