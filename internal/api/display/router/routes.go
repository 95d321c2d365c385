// Package router đăng ký route cho domain display (Slider, Popup)
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	displayhdl "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/handler"
	apirouter "github.com/rebootAcc/jaimatadiphermabackend/internal/api/router"
)

// Register gắn các route /sliders và /popups lên /api.
func Register(api fiber.Router, _ *apirouter.Router) error {
	sliderHandler, err := displayhdl.NewSliderHandler()
	if err != nil {
		return fmt.Errorf("create slider handler: %w", err)
	}
	sliders := api.Group("/sliders")
	sliders.Post("/", sliderHandler.HandleCreate)
	sliders.Get("/", sliderHandler.HandleList)
	sliders.Get("/:id", sliderHandler.FindOneById)
	sliders.Put("/:id", sliderHandler.HandleUpdate)
	sliders.Patch("/:id/active", sliderHandler.HandleSetActiveStatus)
	sliders.Delete("/:id", sliderHandler.HandleDelete)

	popupHandler, err := displayhdl.NewPopupHandler()
	if err != nil {
		return fmt.Errorf("create popup handler: %w", err)
	}
	popups := api.Group("/popups")
	popups.Post("/", popupHandler.HandleCreate)
	popups.Get("/", popupHandler.HandleList)
	popups.Get("/:id", popupHandler.FindOneById)
	popups.Put("/:id", popupHandler.HandleUpdate)
	popups.Patch("/:id/active", popupHandler.HandleSetActiveStatus)
	popups.Delete("/:id", popupHandler.HandleDelete)

	return nil
}
