// Package catalogsvc chứa service data access cho domain catalog.
// Base service (BaseServiceMongoImpl) ở internal/api/base/service.
package catalogsvc

import (
	"fmt"

	basesvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/service"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// CategoryService là service quản lý Category (CRUD)
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}

// MoleculeService là service quản lý Molecule (CRUD)
type MoleculeService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Molecule]
}

// NewMoleculeService tạo mới MoleculeService
func NewMoleculeService() (*MoleculeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Molecules)
	if !exist {
		return nil, fmt.Errorf("failed to get molecules collection: %v", common.ErrNotFound)
	}

	return &MoleculeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Molecule](collection),
	}, nil
}

// PackagingSizeService là service quản lý PackagingSize (CRUD)
type PackagingSizeService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.PackagingSize]
}

// NewPackagingSizeService tạo mới PackagingSizeService
func NewPackagingSizeService() (*PackagingSizeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PackagingSizes)
	if !exist {
		return nil, fmt.Errorf("failed to get packagingsizes collection: %v", common.ErrNotFound)
	}

	return &PackagingSizeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.PackagingSize](collection),
	}, nil
}

// StrengthService là service quản lý Strength (CRUD)
type StrengthService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Strength]
}

// NewStrengthService tạo mới StrengthService
func NewStrengthService() (*StrengthService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Strengths)
	if !exist {
		return nil, fmt.Errorf("failed to get strengths collection: %v", common.ErrNotFound)
	}

	return &StrengthService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Strength](collection),
	}, nil
}
