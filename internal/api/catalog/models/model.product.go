package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product - sản phẩm trong catalog.
// Các field *Name tham chiếu entity khác theo tên (denormalized string,
// không phải foreign key). ProductImage là đường dẫn dạng /upload/<file>.
type Product struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID         string             `json:"productId" bson:"productId" index:"unique"`
	BrandName         string             `json:"brandName" bson:"brandName" index:"single:1"` // Tên thương hiệu (không unique)
	MoleculeName      string             `json:"moleculeName,omitempty" bson:"moleculeName,omitempty" index:"single:1"`
	CategoryName      string             `json:"categoryName,omitempty" bson:"categoryName,omitempty" index:"single:1"`
	StrengthName      string             `json:"strengthName,omitempty" bson:"strengthName,omitempty"`
	PackagingsizeName string             `json:"packagingsizeName,omitempty" bson:"packagingsizeName,omitempty"`
	ProductImage      string             `json:"productImage" bson:"productImage"`
	Active            bool               `json:"active" bson:"active" index:"single:1"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// ProductSuggestion - kết quả gợi ý tìm kiếm, đã gom nhóm theo hoạt chất
type ProductSuggestion struct {
	MoleculeName string `json:"moleculeName" bson:"moleculeName"`
	BrandName    string `json:"brandName" bson:"brandName"`
}
