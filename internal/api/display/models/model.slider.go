package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slider - ảnh trình chiếu trên trang chủ.
// SliderImage là đường dẫn dạng /upload/<file>; mặc định active khi tạo.
type Slider struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SliderID    string             `json:"sliderId" bson:"sliderId" index:"unique"`
	SliderName  string             `json:"sliderName" bson:"sliderName"`
	SliderImage string             `json:"sliderImage" bson:"sliderImage"`
	Active      bool               `json:"active" bson:"active" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
