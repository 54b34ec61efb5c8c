package maintenance

import (
	"log/slog"

	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/config"
	"github.com/contre95/soundgate/src/features/library"
	"github.com/contre95/soundgate/src/features/recovery"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the maintenance panel: catalog stats, forced saves and
// disk recovery.
type Handler struct {
	configManager   *config.Manager
	libraryService  *library.Service
	recoveryService *recovery.Service
	activityService *activity.Service
}

// NewHandler creates a new handler for the maintenance feature.
func NewHandler(cfgManager *config.Manager, libraryService *library.Service, recoveryService *recovery.Service, activityService *activity.Service) *Handler {
	return &Handler{
		configManager:   cfgManager,
		libraryService:  libraryService,
		recoveryService: recoveryService,
		activityService: activityService,
	}
}

// ShowPanel renders the maintenance page.
func (h *Handler) ShowPanel(c *fiber.Ctx) error {
	return h.render(c, "")
}

// RunAction executes a maintenance action and re-renders the panel with a
// result message.
func (h *Handler) RunAction(c *fiber.Ctx) error {
	var message string
	switch action := c.FormValue("action"); action {
	case "save":
		// Outcome is logged; the panel reports the action either way, the
		// sidecar never blocks the request.
		h.libraryService.SaveNow(c.Context())
		message = "Uploaded experiences saved to sidecar."
	case "rebuild":
		if err := h.recoveryService.Rebuild(c.Context()); err != nil {
			slog.Error("Rebuild from disk failed", "error", err)
		}
		message = "Rebuilt uploaded experiences from audio files on disk."
	default:
		slog.Debug("Unknown maintenance action", "action", action)
		message = "Unknown action."
	}
	return h.render(c, message)
}

func (h *Handler) render(c *fiber.Ctx, message string) error {
	cfg := h.configManager.Get()
	stats := h.libraryService.Stats()

	events, err := h.activityService.Recent(c.Context(), 10)
	if err != nil {
		events = nil
	}

	return c.Render("config", fiber.Map{
		"Message":       message,
		"Stats":         stats,
		"UploadFolder":  cfg.PublicPath + "/" + cfg.UploadFolder,
		"CatalogPath":   cfg.CatalogPath,
		"Events":        events,
		"RunningConfig": h.configManager.GetYAML(),
	})
}
