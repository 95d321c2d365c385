// Package displayhdl chứa HTTP handler cho domain display (Slider, Popup).
// Create/Update nhận multipart form; danh sách đi qua cache của service.
package displayhdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/handler"
	displaydto "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/dto"
	displaymodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/models"
	displaysvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// SliderHandler xử lý các request liên quan đến Slider
type SliderHandler struct {
	basehdl.BaseHandler[displaymodels.Slider, displaydto.SliderCreateInput, displaydto.SliderUpdateInput]
	service *displaysvc.SliderService
}

// NewSliderHandler tạo mới SliderHandler
func NewSliderHandler() (*SliderHandler, error) {
	service, err := displaysvc.NewSliderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create slider service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[displaymodels.Slider, displaydto.SliderCreateInput, displaydto.SliderUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Slider",
			IDField:    "sliderId",
			NameField:  "sliderName",
		},
	)
	return &SliderHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}, nil
}

// HandleCreate tạo mới slider từ multipart form (field ảnh: sliderImage).
// Thiếu file trả về 400; slider mới mặc định active trừ khi form gửi active=false.
func (h *SliderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		image, err := c.FormFile("sliderImage")
		if err != nil || image == nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"No files were uploaded.",
				common.StatusBadRequest,
				nil,
			))
		}

		input := displaydto.SliderCreateInput{
			SliderName: c.FormValue("sliderName"),
		}
		if raw := c.FormValue("active"); raw != "" {
			active := raw == "true"
			input.Active = &active
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		model := displaymodels.Slider{
			SliderName: input.SliderName,
			Active:     true,
		}
		if input.Active != nil {
			model.Active = *input.Active
		}

		created, err := h.service.Create(c.Context(), model, image)
		if err != nil {
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Slider", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusCreated, "Slider Created Successfully", created)
	})
}

// HandleList trả về danh sách slider, hỗ trợ filter ?active=
func (h *SliderHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sliders, err := h.service.List(c.Context(), c.Query("active"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, sliders)
	})
}

// HandleUpdate cập nhật slider từ multipart form; có file sliderImage mới thì thay ảnh
func (h *SliderHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sliderID := c.Params("id")
		if sliderID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		input := displaydto.SliderUpdateInput{}
		if name := c.FormValue("sliderName"); name != "" {
			input.SliderName = &name
		}
		if raw := c.FormValue("active"); raw != "" {
			active := raw == "true"
			input.Active = &active
		}

		updateData, err := basehdl.BuildUpdateSet(&input)
		if err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		image, err := c.FormFile("sliderImage")
		if err != nil {
			image = nil
		}

		updated, err := h.service.Update(c.Context(), sliderID, updateData, image)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Slider"))
			}
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Slider", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Slider updated successfully", updated)
	})
}

// HandleSetActiveStatus bật/tắt trạng thái active của slider
func (h *SliderHandler) HandleSetActiveStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sliderID := c.Params("id")
		if sliderID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		var input displaydto.SetActiveInput
		if err := h.ParseRequestBody(c, &input); err != nil || input.Active == nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Active must be a boolean value",
				common.StatusBadRequest,
				nil,
			))
		}

		updated, err := h.service.SetActiveStatus(c.Context(), sliderID, *input.Active)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Slider"))
			}
			return basehdl.HandleError(c, err)
		}

		verb := "deactivated"
		if *input.Active {
			verb = "activated"
		}
		return basehdl.HandleSuccess(c, common.StatusOK,
			fmt.Sprintf("Slider %s successfully", verb), updated)
	})
}

// HandleDelete xóa slider và file ảnh của nó
func (h *SliderHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sliderID := c.Params("id")
		if sliderID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		if err := h.service.Delete(c.Context(), sliderID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Slider"))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Slider deleted successfully", nil)
	})
}
