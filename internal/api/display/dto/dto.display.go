// Package displaydto chứa DTO cho domain display (Slider, Popup).
package displaydto

// SliderCreateInput là input để tạo Slider (từ multipart form, file ảnh đi riêng)
type SliderCreateInput struct {
	SliderName string `json:"sliderName" validate:"required,no_xss"`
	Active     *bool  `json:"active,omitempty"`
}

// SliderUpdateInput là input để cập nhật Slider (partial update)
type SliderUpdateInput struct {
	SliderName *string `json:"sliderName,omitempty" validate:"omitempty,no_xss"`
	Active     *bool   `json:"active,omitempty"`
}

// PopupCreateInput là input để tạo Popup (từ multipart form, file ảnh đi riêng)
type PopupCreateInput struct {
	PopupName string `json:"popupName" validate:"required,no_xss"`
	Active    *bool  `json:"active,omitempty"`
}

// PopupUpdateInput là input để cập nhật Popup (partial update)
type PopupUpdateInput struct {
	PopupName *string `json:"popupName,omitempty" validate:"omitempty,no_xss"`
	Active    *bool   `json:"active,omitempty"`
}

// SetActiveInput là body của PATCH /:id/active.
// Dùng *bool để phân biệt thiếu field với giá trị false.
type SetActiveInput struct {
	Active *bool `json:"active"`
}
