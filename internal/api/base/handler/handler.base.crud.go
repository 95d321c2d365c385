package basehdl

// Các CRUD endpoint generic cho entity định danh bằng business ID tuần tự.
// Handler của từng entity chỉ cần cấu hình EntityConfig; entity có nghiệp vụ
// riêng (upload ảnh, cache) tự định nghĩa handler và chỉ dùng lại các tiện ích.

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
)

// InsertOne thêm mới một document.
// Body JSON được parse thành DTO CreateInput, validate, transform sang Model
// rồi gán business ID vừa cấp phát trước khi insert.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}

		model, err := TransformToModel[T](&input)
		if err != nil {
			return HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		id, err := h.BaseService.NextSequenceID(c.Context(), h.Config.IDField, h.Config.IDField)
		if err != nil {
			return HandleError(c, common.ConvertMongoError(err))
		}
		if err := SetModelField(model, h.Config.IDField, id); err != nil {
			return HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				err.Error(),
			))
		}

		created, err := h.BaseService.InsertOne(c.Context(), *model)
		if err != nil {
			if IsDuplicateError(err) {
				return HandleError(c, DuplicateNameError(h.Config.EntityName, err))
			}
			return HandleError(c, err)
		}

		return HandleSuccess(c, common.StatusCreated,
			fmt.Sprintf("%s created successfully", h.Config.EntityName), created)
	})
}

// Find trả về toàn bộ document, mới nhất trước
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.M{"createdAt": -1})
		data, err := h.BaseService.Find(c.Context(), bson.D{}, opts)
		if err != nil {
			return HandleError(c, err)
		}
		// Các endpoint đọc trả dữ liệu trực tiếp, không bọc envelope
		return JSONResponse(c, common.StatusOK, data)
	})
}

// FindOneById tìm một document theo business ID trong URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			return HandleError(c, common.ErrInvalidInput)
		}

		data, err := h.BaseService.FindOne(c.Context(), bson.M{h.Config.IDField: id}, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return HandleError(c, NotFoundError(h.Config.EntityName))
			}
			return HandleError(c, err)
		}

		return JSONResponse(c, common.StatusOK, data)
	})
}

// UpdateById cập nhật một document theo business ID.
// Chỉ update các trường có trong input, giữ nguyên các trường khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			return HandleError(c, common.ErrInvalidInput)
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}

		updateData, err := BuildUpdateSet(&input)
		if err != nil {
			return HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		data, err := h.BaseService.UpdateOne(c.Context(), bson.M{h.Config.IDField: id}, updateData, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return HandleError(c, NotFoundError(h.Config.EntityName))
			}
			if IsDuplicateError(err) {
				return HandleError(c, DuplicateNameError(h.Config.EntityName, err))
			}
			return HandleError(c, err)
		}

		return HandleSuccess(c, common.StatusOK,
			fmt.Sprintf("%s updated successfully", h.Config.EntityName), data)
	})
}

// DeleteById xóa một document theo business ID
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			return HandleError(c, common.ErrInvalidInput)
		}

		err := h.BaseService.DeleteOne(c.Context(), bson.M{h.Config.IDField: id})
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return HandleError(c, NotFoundError(h.Config.EntityName))
			}
			return HandleError(c, err)
		}

		return HandleSuccess(c, common.StatusOK,
			fmt.Sprintf("%s deleted successfully", h.Config.EntityName), nil)
	})
}
