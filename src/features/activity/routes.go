package activity

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the activity feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)
	app.Get("/activity", handler.GetRecent)
}
