package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rebootAcc/jaimatadiphermabackend/config"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/registry"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	Categories     string // Tên collection cho danh mục thuốc
	Molecules      string // Tên collection cho hoạt chất (molecule)
	PackagingSizes string // Tên collection cho quy cách đóng gói
	Strengths      string // Tên collection cho hàm lượng
	Products       string // Tên collection cho sản phẩm
	Sliders        string // Tên collection cho slider trang chủ
	Popups         string // Tên collection cho popup trang chủ
}

// Các biến toàn cục
var Validate *validator.Validate                                                        // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                       // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                                  // Cấu hình của server
var MongoDB_ColNames MongoDB_Catalog_CollectionName = *new(MongoDB_Catalog_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
