package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackagingSize - quy cách đóng gói (vd: 10x10 viên, chai 100ml)
type PackagingSize struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PackagingsizeID   string             `json:"packagingsizeId" bson:"packagingsizeId" index:"unique"`
	PackagingsizeName string             `json:"packagingsizeName" bson:"packagingsizeName" index:"unique"` // Tên quy cách (unique)
	CreatedAt         int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
