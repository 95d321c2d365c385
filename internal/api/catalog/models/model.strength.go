package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Strength - hàm lượng của sản phẩm (vd: 500mg)
type Strength struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StrengthID   string             `json:"strengthId" bson:"strengthId" index:"unique"`
	StrengthName string             `json:"strengthName" bson:"strengthName" index:"unique"` // Tên hàm lượng (unique)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
