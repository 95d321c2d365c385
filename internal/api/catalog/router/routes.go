// Package router đăng ký các route thuộc domain catalog: Category, Molecule,
// PackagingSize, Strength (CRUD) và Product (CRUD + query engine).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/handler"
	apirouter "github.com/rebootAcc/jaimatadiphermabackend/internal/api/router"
)

// Register đăng ký tất cả route catalog lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(api, "/categories", categoryHandler, apirouter.ReadWriteConfig)

	moleculeHandler, err := cataloghdl.NewMoleculeHandler()
	if err != nil {
		return fmt.Errorf("create molecule handler: %w", err)
	}
	r.RegisterCRUDRoutes(api, "/molecules", moleculeHandler, apirouter.ReadWriteConfig)

	packagingSizeHandler, err := cataloghdl.NewPackagingSizeHandler()
	if err != nil {
		return fmt.Errorf("create packaging size handler: %w", err)
	}
	r.RegisterCRUDRoutes(api, "/packagingsizes", packagingSizeHandler, apirouter.ReadWriteConfig)

	strengthHandler, err := cataloghdl.NewStrengthHandler()
	if err != nil {
		return fmt.Errorf("create strength handler: %w", err)
	}
	r.RegisterCRUDRoutes(api, "/strengths", strengthHandler, apirouter.ReadWriteConfig)

	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	products := api.Group("/products")
	// Route cụ thể phải đứng trước /:id
	products.Get("/search/fuzzy", productHandler.HandleFuzzySearch)
	products.Get("/search", productHandler.HandleSearch)
	products.Get("/random", productHandler.HandleRandom)
	products.Post("/", productHandler.HandleCreate)
	products.Get("/", productHandler.HandleFindPage)
	products.Get("/:id", productHandler.FindOneById)
	products.Put("/:id", productHandler.HandleUpdate)
	products.Patch("/:id/active", productHandler.HandleSetActiveStatus)
	products.Delete("/:id", productHandler.HandleDelete)

	return nil
}
