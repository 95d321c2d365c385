// Package catalogdto chứa DTO cho domain catalog (Category, Molecule,
// PackagingSize, Strength, Product).
package catalogdto

// CategoryCreateInput là input để tạo Category
type CategoryCreateInput struct {
	CategoryName string `json:"categoryName" validate:"required,no_xss"` // Tên danh mục (unique)
}

// CategoryUpdateInput là input để cập nhật Category
type CategoryUpdateInput struct {
	CategoryName *string `json:"categoryName,omitempty" validate:"omitempty,no_xss"`
}

// MoleculeCreateInput là input để tạo Molecule
type MoleculeCreateInput struct {
	MoleculeName string `json:"moleculeName" validate:"required,no_xss"` // Tên hoạt chất (unique)
}

// MoleculeUpdateInput là input để cập nhật Molecule
type MoleculeUpdateInput struct {
	MoleculeName *string `json:"moleculeName,omitempty" validate:"omitempty,no_xss"`
}

// PackagingSizeCreateInput là input để tạo PackagingSize
type PackagingSizeCreateInput struct {
	PackagingsizeName string `json:"packagingsizeName" validate:"required,no_xss"` // Tên quy cách (unique)
}

// PackagingSizeUpdateInput là input để cập nhật PackagingSize
type PackagingSizeUpdateInput struct {
	PackagingsizeName *string `json:"packagingsizeName,omitempty" validate:"omitempty,no_xss"`
}

// StrengthCreateInput là input để tạo Strength
type StrengthCreateInput struct {
	StrengthName string `json:"strengthName" validate:"required,no_xss"` // Tên hàm lượng (unique)
}

// StrengthUpdateInput là input để cập nhật Strength
type StrengthUpdateInput struct {
	StrengthName *string `json:"strengthName,omitempty" validate:"omitempty,no_xss"`
}

// ProductCreateInput là input để tạo Product (từ multipart form, file ảnh đi riêng)
type ProductCreateInput struct {
	BrandName         string `json:"brandName" validate:"required,no_xss"`
	MoleculeName      string `json:"moleculeName,omitempty" validate:"omitempty,no_xss"`
	CategoryName      string `json:"categoryName,omitempty" validate:"omitempty,no_xss"`
	StrengthName      string `json:"strengthName,omitempty" validate:"omitempty,no_xss"`
	PackagingsizeName string `json:"packagingsizeName,omitempty" validate:"omitempty,no_xss"`
	Active            *bool  `json:"active,omitempty"`
}

// ProductUpdateInput là input để cập nhật Product (partial update)
type ProductUpdateInput struct {
	BrandName         *string `json:"brandName,omitempty" validate:"omitempty,no_xss"`
	MoleculeName      *string `json:"moleculeName,omitempty" validate:"omitempty,no_xss"`
	CategoryName      *string `json:"categoryName,omitempty" validate:"omitempty,no_xss"`
	StrengthName      *string `json:"strengthName,omitempty" validate:"omitempty,no_xss"`
	PackagingsizeName *string `json:"packagingsizeName,omitempty" validate:"omitempty,no_xss"`
	Active            *bool   `json:"active,omitempty"`
}

// SetActiveInput là body của PATCH /:id/active, dùng chung cho Product/Slider/Popup.
// Dùng *bool để phân biệt thiếu field với giá trị false.
type SetActiveInput struct {
	Active *bool `json:"active"`
}
