// Package cataloghdl chứa HTTP handler cho domain catalog.
package cataloghdl

import (
	"fmt"

	basehdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/handler"
	catalogdto "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/dto"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	catalogsvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/service"
)

// CategoryHandler xử lý các request liên quan đến Category
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Category",
			IDField:    "categoryId",
			NameField:  "categoryName",
		},
	)
	return &CategoryHandler{BaseHandler: *baseHandler}, nil
}

// MoleculeHandler xử lý các request liên quan đến Molecule
type MoleculeHandler struct {
	basehdl.BaseHandler[catalogmodels.Molecule, catalogdto.MoleculeCreateInput, catalogdto.MoleculeUpdateInput]
}

// NewMoleculeHandler tạo mới MoleculeHandler
func NewMoleculeHandler() (*MoleculeHandler, error) {
	service, err := catalogsvc.NewMoleculeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create molecule service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Molecule, catalogdto.MoleculeCreateInput, catalogdto.MoleculeUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Molecule",
			IDField:    "moleculeId",
			NameField:  "moleculeName",
		},
	)
	return &MoleculeHandler{BaseHandler: *baseHandler}, nil
}

// PackagingSizeHandler xử lý các request liên quan đến PackagingSize
type PackagingSizeHandler struct {
	basehdl.BaseHandler[catalogmodels.PackagingSize, catalogdto.PackagingSizeCreateInput, catalogdto.PackagingSizeUpdateInput]
}

// NewPackagingSizeHandler tạo mới PackagingSizeHandler
func NewPackagingSizeHandler() (*PackagingSizeHandler, error) {
	service, err := catalogsvc.NewPackagingSizeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create packaging size service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.PackagingSize, catalogdto.PackagingSizeCreateInput, catalogdto.PackagingSizeUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Packaging Size",
			IDField:    "packagingsizeId",
			NameField:  "packagingsizeName",
		},
	)
	return &PackagingSizeHandler{BaseHandler: *baseHandler}, nil
}

// StrengthHandler xử lý các request liên quan đến Strength
type StrengthHandler struct {
	basehdl.BaseHandler[catalogmodels.Strength, catalogdto.StrengthCreateInput, catalogdto.StrengthUpdateInput]
}

// NewStrengthHandler tạo mới StrengthHandler
func NewStrengthHandler() (*StrengthHandler, error) {
	service, err := catalogsvc.NewStrengthService()
	if err != nil {
		return nil, fmt.Errorf("failed to create strength service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Strength, catalogdto.StrengthCreateInput, catalogdto.StrengthUpdateInput](
		service,
		basehdl.EntityConfig{
			EntityName: "Strength",
			IDField:    "strengthId",
			NameField:  "strengthName",
		},
	)
	return &StrengthHandler{BaseHandler: *baseHandler}, nil
}
