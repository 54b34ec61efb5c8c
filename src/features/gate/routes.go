package gate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// RegisterRoutes registers the routes for the gate feature. These must be
// reachable without a granted session.
func RegisterRoutes(app *fiber.App, service *Service, sessions *session.Store) {
	handler := NewHandler(service, sessions)
	app.Get("/gate", handler.ShowGate)
	app.Post("/gate", handler.SubmitCode)
}
