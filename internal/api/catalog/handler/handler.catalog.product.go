package cataloghdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/handler"
	catalogdto "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/dto"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	catalogsvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// ProductHandler xử lý các request liên quan đến Product.
// Create/Update nhận multipart form (field ảnh: productImage); các endpoint
// đọc (list/search/random) đi qua cache của ProductService.
type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	service *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Product",
			IDField:    "productId",
			NameField:  "brandName",
		},
	)
	return &ProductHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}, nil
}

// parseProductForm đọc các field text của multipart form vào CreateInput
func parseProductForm(c fiber.Ctx) catalogdto.ProductCreateInput {
	input := catalogdto.ProductCreateInput{
		BrandName:         c.FormValue("brandName"),
		MoleculeName:      c.FormValue("moleculeName"),
		CategoryName:      c.FormValue("categoryName"),
		StrengthName:      c.FormValue("strengthName"),
		PackagingsizeName: c.FormValue("packagingsizeName"),
	}
	if raw := c.FormValue("active"); raw != "" {
		active := raw == "true"
		input.Active = &active
	}
	return input
}

// HandleCreate tạo mới sản phẩm từ multipart form.
// Thiếu file ảnh trả về 400; ảnh ghi xuống đĩa xong mới insert document.
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		image, err := c.FormFile("productImage")
		if err != nil || image == nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"No files were uploaded.",
				common.StatusBadRequest,
				nil,
			))
		}

		input := parseProductForm(c)
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		model, err := basehdl.TransformToModel[catalogmodels.Product](&input)
		if err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		// Sản phẩm mới hiển thị mặc định, trừ khi form gửi active=false
		if input.Active == nil {
			model.Active = true
		}

		created, err := h.service.Create(c.Context(), *model, image)
		if err != nil {
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Product", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusCreated, "Product Created Successfully", created)
	})
}

// HandleFindPage trả về danh sách sản phẩm phân trang dạng
// {page, totalPages, totalDocuments, data}
func (h *ProductHandler) HandleFindPage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.service.FindPage(c.Context(), catalogsvc.ProductListQuery{
			Page:      page,
			Limit:     limit,
			ActiveRaw: c.Query("active"),
			Category:  c.Query("category"),
			Search:    c.Query("search"),
		})
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, result)
	})
}

// HandleSearch trả về gợi ý theo substring, gom nhóm theo hoạt chất, tối đa 10
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := c.Query("query")
		if query == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Query parameter is required",
				common.StatusBadRequest,
				nil,
			))
		}

		suggestions, err := h.service.SearchSuggestions(c.Context(), query)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, suggestions)
	})
}

// HandleFuzzySearch trả về gợi ý theo fuzzy match (ký tự xen kẽ), tối đa 30
func (h *ProductHandler) HandleFuzzySearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := c.Query("query")
		if query == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Query parameter is required",
				common.StatusBadRequest,
				nil,
			))
		}

		suggestions, err := h.service.FuzzySearchSuggestions(c.Context(), query)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, suggestions)
	})
}

// HandleRandom trả về mẫu sản phẩm ngẫu nhiên đã loại trùng hoạt chất
func (h *ProductHandler) HandleRandom(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		products, err := h.service.RandomSuggestions(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, products)
	})
}

// HandleUpdate cập nhật sản phẩm từ multipart form.
// Có file productImage mới thì thay ảnh, file cũ bị xóa.
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("id")
		if productID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		input := parseProductForm(c)
		updateData, err := basehdl.BuildUpdateSet(&input)
		if err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		// Ảnh là tùy chọn khi update
		image, err := c.FormFile("productImage")
		if err != nil {
			image = nil
		}

		updated, err := h.service.Update(c.Context(), productID, updateData, image)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Product"))
			}
			if basehdl.IsDuplicateError(err) {
				return basehdl.HandleError(c, basehdl.DuplicateNameError("Product", err))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Product updated successfully", updated)
	})
}

// HandleSetActiveStatus bật/tắt trạng thái active của sản phẩm.
// Body JSON {"active": bool}; thiếu hoặc sai kiểu trả về 400.
func (h *ProductHandler) HandleSetActiveStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("id")
		if productID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		var input catalogdto.SetActiveInput
		if err := h.ParseRequestBody(c, &input); err != nil || input.Active == nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"isActive must be a boolean value",
				common.StatusBadRequest,
				nil,
			))
		}

		updated, err := h.service.SetActiveStatus(c.Context(), productID, *input.Active)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Product"))
			}
			return basehdl.HandleError(c, err)
		}

		verb := "deactivated"
		if *input.Active {
			verb = "activated"
		}
		return basehdl.HandleSuccess(c, common.StatusOK,
			fmt.Sprintf("Product %s successfully", verb), updated)
	})
}

// HandleDelete xóa sản phẩm và file ảnh của nó
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("id")
		if productID == "" {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		if err := h.service.Delete(c.Context(), productID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, basehdl.NotFoundError("Product"))
			}
			return basehdl.HandleError(c, err)
		}

		return basehdl.HandleSuccess(c, common.StatusOK, "Product deleted successfully", nil)
	})
}
