// Package router cung cấp khung đăng ký route cho các domain.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// CRUDHandler định nghĩa interface cho các handler CRUD theo business ID
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	Create   bool
	Find     bool
	FindById bool
	UpdById  bool
	DelById  bool
}

// ReadWriteConfig cho phép đầy đủ CRUD
var ReadWriteConfig = CRUDConfig{
	Create: true, Find: true, FindById: true,
	UpdById: true, DelById: true,
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterCRUDRoutes đăng ký các route CRUD REST cho một collection.
// Route cụ thể (search, random, ...) phải được domain đăng ký TRƯỚC khi gọi
// hàm này để không bị route param /:id nuốt mất.
func (r *Router) RegisterCRUDRoutes(api fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	group := api.Group(prefix)

	if config.Create {
		group.Post("/", h.InsertOne)
	}
	if config.Find {
		group.Get("/", h.Find)
	}
	if config.FindById {
		group.Get("/:id", h.FindOneById)
	}
	if config.UpdById {
		group.Put("/:id", h.UpdateById)
	}
	if config.DelById {
		group.Delete("/:id", h.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt
// Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
