package maintenance

import (
	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/config"
	"github.com/contre95/soundgate/src/features/library"
	"github.com/contre95/soundgate/src/features/recovery"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the maintenance feature.
func RegisterRoutes(app *fiber.App, cfgManager *config.Manager, libraryService *library.Service, recoveryService *recovery.Service, activityService *activity.Service) {
	handler := NewHandler(cfgManager, libraryService, recoveryService, activityService)
	app.Get("/config", handler.ShowPanel)
	app.Post("/config", handler.RunAction)
}
