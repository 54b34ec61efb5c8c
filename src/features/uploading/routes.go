package uploading

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the uploading feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)
	app.Post("/upload", handler.Upload)
}
