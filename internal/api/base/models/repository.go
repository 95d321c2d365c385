// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

// PaginateResult đại diện cho kết quả phân trang.
// Đây cũng là payload trả về client cho các endpoint danh sách phân trang,
// vì vậy json tag của các field là một phần contract của API.
type PaginateResult[T any] struct {
	// Trang hiện tại (bắt đầu từ 1)
	Page int64 `json:"page" bson:"page"`
	// Tổng số trang = ceil(totalDocuments / limit)
	TotalPages int64 `json:"totalPages" bson:"totalPages"`
	// Tổng số document khớp filter, độc lập với slice trả về
	TotalDocuments int64 `json:"totalDocuments" bson:"totalDocuments"`
	// Dữ liệu của trang hiện tại
	Data []T `json:"data" bson:"data"`
}

// CountResult đại diện cho kết quả đếm
type CountResult struct {
	// Tổng số lượng mục
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
}
