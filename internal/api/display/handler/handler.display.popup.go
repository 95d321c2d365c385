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

// PopupHandler xử lý các request liên quan đến Popup
type PopupHandler struct {
	basehdl.BaseHandler[displaymodels.Popup, displaydto.PopupCreateInput, displaydto.PopupUpdateInput]
	service *displaysvc.PopupService
}

// NewPopupHandler tạo mới PopupHandler
func NewPopupHandler() (*PopupHandler, error) {
	service, err := displaysvc.NewPopupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create popup service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[displaymodels.Popup, displaydto.PopupCreateInput, displaydto.PopupUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Popup",
			IDField:    "popupId",
			NameField:  "popupName",
		},
	)
	return &PopupHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}, nil
}

// HandleCreate tạo mới popup từ multipart form (field ảnh: popupImage).
// Popup mới mặc định không active; nếu form gửi active=true thì service sẽ
// tắt tất cả popup khác trước khi bật popup này.
func (h *PopupHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		image, err := c.FormFile("popupImage")
		if err != nil || image == nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"No files were uploaded.",
				common.StatusBadRequest,
				nil,
			))
		}

		input := displaydto.PopupCreateInput{
			PopupName: c.FormValue("popupName"),
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

		model := displaymodels.Popup{
			PopupName: input.PopupName,
			Active:    false,
		}
		if input.Active != nil {
			model.Active = *input.Active
		}

		created, err := h.service.Create(c.Context(), model, image)
		if err != nil {
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Popup", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusCreated, "Popup Created Successfully", created)
	})
}

// HandleList trả về danh sách popup, hỗ trợ filter ?active=
func (h *PopupHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		popups, err := h.service.List(c.Context(), c.Query("active"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, popups)
	})
}

// HandleUpdate cập nhật popup từ multipart form; có file popupImage mới thì thay ảnh
func (h *PopupHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		popupID := c.Params("id")
		if popupID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		input := displaydto.PopupUpdateInput{}
		if name := c.FormValue("popupName"); name != "" {
			input.PopupName = &name
		}
		if raw := c.FormValue("active"); raw != "" {
			active := raw == "true"
			input.Active = &active
		}

		updateData, err := basehdl.BuildUpdateSet(&input)
		if err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		image, err := c.FormFile("popupImage")
		if err != nil {
			image = nil
		}

		updated, err := h.service.Update(c.Context(), popupID, updateData, image)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Popup"))
			}
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Popup", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Popup updated successfully", updated)
	})
}

// HandleSetActiveStatus bật/tắt popup; khi bật, service đảm bảo chỉ một popup active
func (h *PopupHandler) HandleSetActiveStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		popupID := c.Params("id")
		if popupID == "" {
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

		updated, err := h.service.SetActiveStatus(c.Context(), popupID, *input.Active)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Popup"))
			}
			return basehdl.HandleError(c, err)
		}

		verb := "deactivated"
		if *input.Active {
			verb = "activated"
		}
		return basehdl.HandleSuccess(c, common.StatusOK,
			fmt.Sprintf("Popup %s successfully", verb), updated)
	})
}

// HandleDelete xóa popup và file ảnh của nó
func (h *PopupHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		popupID := c.Params("id")
		if popupID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		if err := h.service.Delete(c.Context(), popupID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Popup"))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Popup deleted successfully", nil)
	})
}
