package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rebootAcc/jaimatadiphermabackend/config"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	displaymodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/models"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/database"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initUploadDir()        // Đảm bảo thư mục upload tồn tại
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Molecules = "molecules"
	global.MongoDB_ColNames.PackagingSizes = "packagingsizes"
	global.MongoDB_ColNames.Strengths = "strengths"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Sliders = "sliders"
	global.MongoDB_ColNames.Popups = "popups"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm đảm bảo thư mục upload ảnh tồn tại trước khi server nhận request
func initUploadDir() {
	dir := global.ServerConfig.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.Fatalf("Failed to create upload directory %s: %v", dir, err)
	}
	logrus.Infof("Upload directory ready: %s", dir)
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName_Data
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Molecules), catalogmodels.Molecule{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PackagingSizes), catalogmodels.PackagingSize{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Strengths), catalogmodels.Strength{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Sliders), displaymodels.Slider{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Popups), displaymodels.Popup{})
}
