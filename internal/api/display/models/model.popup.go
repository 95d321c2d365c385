package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Popup - popup quảng cáo hiển thị trên trang chủ.
// Tối đa một popup active tại mọi thời điểm; popup mới tạo mặc định inactive.
type Popup struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PopupID    string             `json:"popupId" bson:"popupId" index:"unique"`
	PopupName  string             `json:"popupName" bson:"popupName"`
	PopupImage string             `json:"popupImage" bson:"popupImage"`
	Active     bool               `json:"active" bson:"active" index:"single:1"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
