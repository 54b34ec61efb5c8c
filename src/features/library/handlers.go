package library

import (
	"log/slog"
	"strings"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the library feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Home renders the main experiences page: packages in first-seen order plus
// author/voice filter lists.
func (h *Handler) Home(c *fiber.Ctx) error {
	slog.Debug("Home handler called")
	return c.Render("index", fiber.Map{
		"Experiences": h.service.List(),
		"Packages":    h.service.Grouped(),
		"Authors":     h.service.Authors(),
		"Voices":      h.service.Voices(),
	})
}

// Player renders the dedicated playback page for one experience. Unknown
// ids fall back to the home page.
func (h *Handler) Player(c *fiber.Ctx) error {
	id := c.Params("id")
	entry, ok := h.service.Find(id)
	if !ok {
		slog.Debug("Player requested for unknown experience", "id", id)
		return c.Redirect("/")
	}
	return c.Render("experience", fiber.Map{
		"Exp": entry,
	})
}

// GetExperiences returns the catalog as JSON.
func (h *Handler) GetExperiences(c *fiber.Ctx) error {
	slog.Debug("GetExperiences handler called")
	list := h.service.List()

	acceptHeader := c.Get("Accept")
	if strings.Contains(acceptHeader, "text/html") {
		return c.Render("index", fiber.Map{
			"Experiences": list,
			"Packages":    h.service.Grouped(),
			"Authors":     h.service.Authors(),
			"Voices":      h.service.Voices(),
		})
	}
	return c.JSON(list)
}

// Delete removes an uploaded experience and redirects home. Refusals are
// silent no-ops, matching the listing-page flow.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		switch err {
		case experiences.ErrSeedEntry:
			slog.Debug("Delete refused for seed experience", "id", id)
		case experiences.ErrNotFound:
			slog.Debug("Delete requested for unknown experience", "id", id)
		default:
			slog.Error("Delete failed", "id", id, "error", err)
		}
	}
	return c.Redirect("/")
}
