package library

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the library feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Get("/", handler.Home)
	app.Get("/experiences", handler.GetExperiences)
	app.Get("/experience/:id", handler.Player)
	app.Post("/experience/:id/delete", handler.Delete)
}
