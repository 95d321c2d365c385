package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleSuccess trả về response thành công theo format {"message": ..., "data": ...}.
// data nil thì bỏ field data (vd: delete chỉ cần message).
func HandleSuccess(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	payload := fiber.Map{"message": message}
	if data != nil {
		payload["data"] = data
	}
	return JSONResponse(c, statusCode, payload)
}

// HandleError trả về response lỗi theo format {"message": ..., "error": ...}.
// Lỗi không phải *common.Error được coi là lỗi hệ thống (500).
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		detail := customErr.Code.Code
		if customErr.Details != nil {
			detail = fmt.Sprintf("%v", customErr.Details)
		}
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"message": customErr.Message,
			"error":   detail,
		})
	}

	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"message": common.MsgInternalError,
		"error":   err.Error(),
	})
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Thành công trả về 200 với message mặc định; lỗi đi qua HandleError.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return HandleSuccess(c, common.StatusOK, common.MsgSuccess, data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
				"stack": string(debug.Stack()),
				"path":  c.Path(),
			}).Error("Panic trong handler")

			_ = HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprintf("%v", r),
			))
		}
	}()
	return handler()
}

// IsDuplicateError kiểm tra lỗi có phải duplicate key (unique index) không
func IsDuplicateError(err error) bool {
	return errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate)
}

// DuplicateNameError tạo lỗi 400 khi tên entity đã tồn tại
func DuplicateNameError(entityName string, cause error) error {
	detail := interface{}(nil)
	if cause != nil {
		detail = cause.Error()
	}
	return common.NewError(
		common.ErrCodeDatabaseQuery,
		fmt.Sprintf("%s Name already exists. Please try another name.", entityName),
		common.StatusBadRequest,
		detail,
	)
}

// NotFoundError tạo lỗi 404 cho entity
func NotFoundError(entityName string) error {
	return common.NewError(
		common.ErrCodeDatabaseQuery,
		fmt.Sprintf("%s not found", entityName),
		common.StatusNotFound,
		nil,
	)
}
