package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category - danh mục sản phẩm.
// CategoryID là business ID dạng categoryId0001, cấp phát tuần tự và bất biến.
type Category struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryID   string             `json:"categoryId" bson:"categoryId" index:"unique"`
	CategoryName string             `json:"categoryName" bson:"categoryName" index:"unique"` // Tên danh mục (unique)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
