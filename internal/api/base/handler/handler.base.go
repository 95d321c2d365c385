package basehdl

// Package basehdl chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	basesvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// EntityConfig cấu hình cho các CRUD endpoint generic.
// IDField là tên field business ID trong BSON (vd: categoryId), đồng thời là
// prefix khi cấp phát ID tuần tự. NameField là field tên duy nhất (vd: categoryName)
// dùng cho thông báo lỗi trùng lặp.
type EntityConfig struct {
	EntityName string // Tên entity hiển thị trong message (vd: Category)
	IDField    string // Field business ID trong BSON, cũng là prefix của ID
	NameField  string // Field tên duy nhất trong BSON
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	Config      EntityConfig                // Cấu hình entity cho CRUD generic
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T], cfg EntityConfig) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		Config:      cfg,
	}
}

// validateInput thực hiện validate chi tiết dữ liệu đầu vào
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	if err := h.validateInput(input); err != nil {
		return err
	}

	return nil
}

// ParsePagination xử lý việc parse thông tin phân trang từ request.
// Hỗ trợ các tham số:
// - page: Số trang (mặc định: 1)
// - limit: Số lượng item trên một trang (mặc định: 20)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 20
	}

	return page, limit
}

// TransformToModel copy các field cùng tên từ DTO sang Model (dùng reflection).
// DTO và Model dùng chung tên field Go; field không tồn tại trong Model bị bỏ qua.
func TransformToModel[T any](input interface{}) (*T, error) {
	model := new(T)

	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model).Elem()
	modelType := modelVal.Type()
	inputType := inputVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		if !inputField.CanInterface() {
			continue
		}

		if _, found := modelType.FieldByName(inputFieldType.Name); !found {
			continue
		}

		modelField := modelVal.FieldByName(inputFieldType.Name)
		if !modelField.IsValid() || !modelField.CanSet() {
			continue
		}

		// DTO dùng pointer cho field optional; deref trước khi gán vào Model
		src := inputField
		if src.Kind() == reflect.Ptr {
			if src.IsNil() {
				continue
			}
			src = src.Elem()
		}

		if src.Type().AssignableTo(modelField.Type()) {
			modelField.Set(src)
		} else if src.Type().ConvertibleTo(modelField.Type()) {
			modelField.Set(src.Convert(modelField.Type()))
		}
	}

	return model, nil
}

// BuildUpdateSet tạo UpdateData ($set) từ các field non-zero của input (partial update).
// Field dạng pointer được deref; pointer non-nil tới zero value vẫn được ghi
// (cho phép client set false/0 một cách tường minh).
func BuildUpdateSet(input interface{}) (*basesvc.UpdateData, error) {
	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}

	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanInterface() {
			continue
		}

		key := bsonKey(fieldType)
		if key == "" || key == "-" {
			continue
		}

		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				continue
			}
			updateData.Set[key] = field.Elem().Interface()
			continue
		}

		if field.IsZero() {
			continue
		}
		updateData.Set[key] = field.Interface()
	}

	return updateData, nil
}

// SetModelField gán giá trị string vào field có bson tag tương ứng (dùng reflection).
// Dùng để gán business ID vừa cấp phát vào model trước khi insert.
func SetModelField(model interface{}, bsonField, value string) error {
	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("model phải là struct hoặc pointer đến struct")
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		if bsonKey(typ.Field(i)) != bsonField {
			continue
		}
		field := val.Field(i)
		if !field.CanSet() || field.Kind() != reflect.String {
			return fmt.Errorf("field '%s' không thể gán giá trị string", bsonField)
		}
		field.SetString(value)
		return nil
	}

	return fmt.Errorf("không tìm thấy field có bson tag '%s'", bsonField)
}

// bsonKey lấy key BSON từ struct tag, bỏ phần options (,omitempty).
// DTO chỉ có json tag; key JSON và key BSON trùng nhau trong toàn bộ model.
func bsonKey(f reflect.StructField) string {
	tag := f.Tag.Get("bson")
	if tag == "" {
		tag = f.Tag.Get("json")
	}
	if tag == "" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
