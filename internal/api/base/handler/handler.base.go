// Package basehdl chứa base handler dùng chung: parse input, validate,
// chuẩn hóa response và xử lý panic cho các domain handler.
package basehdl

import (
	"bytes"
	"encoding/json"
	"strconv"

	"cine_catalog/internal/common"
	"cine_catalog/internal/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler chứa các helper dùng chung cho tất cả domain handler
type BaseHandler struct{}

// ParseRequestBody parse JSON body vào struct và validate theo tag `validate`.
// Dùng json.Decoder với UseNumber để không mất độ chính xác các số lớn (tmdbId).
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Request body is empty", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Invalid JSON body", common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ValidateInput validate struct theo tag `validate`, trả về lỗi 400 kèm field đầu tiên sai
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if ok := len(err.Error()) > 0; ok {
			if ve, isVE := err.(validator.ValidationErrors); isVE {
				validationErrors = ve
			}
		}
		message := "Invalid input data"
		if len(validationErrors) > 0 {
			message = "Invalid value for field: " + validationErrors[0].Field()
		}
		return common.NewError(common.ErrCodeValidationInput, message, common.StatusBadRequest, err)
	}
	return nil
}

// ParseObjectIDParam lấy path param và convert sang ObjectID.
// Trả về lỗi 400 nếu param không phải là ObjectID hợp lệ.
func (h *BaseHandler) ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid id", common.StatusBadRequest, err)
	}
	return id, nil
}

// GetUserID lấy user id từ Locals (do auth middleware set)
func (h *BaseHandler) GetUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// ParsePagination lấy page/limit từ query string, áp mặc định page=1 limit=20
func (h *BaseHandler) ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = 1
	limit = 20

	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}
