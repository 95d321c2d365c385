// Package mediahdl phục vụ file ảnh đã upload qua HTTP
package mediahdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/handler"
	mediasvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/media/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
)

// ImageHandler xử lý route đọc file ảnh theo tên
type ImageHandler struct {
	storage *mediasvc.Storage
}

// NewImageHandler tạo ImageHandler với Storage được cung cấp
func NewImageHandler(storage *mediasvc.Storage) *ImageHandler {
	return &ImageHandler{storage: storage}
}

// HandleGetImage trả về nội dung file ảnh theo tên file trong URI params.
// Chỉ chấp nhận base name; file không tồn tại trả về 404.
func (h *ImageHandler) HandleGetImage(c fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return basehdl.HandleError(c, common.ErrInvalidInput)
	}

	path, err := h.storage.Path(filename)
	if err != nil {
		return basehdl.HandleError(c, err)
	}

	if !h.storage.Exists(filename) {
		return basehdl.HandleError(c, common.NewError(
			common.ErrCodeDatabaseQuery,
			"Image not found",
			common.StatusNotFound,
			nil,
		))
	}

	return c.SendFile(path)
}
