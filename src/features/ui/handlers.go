package ui

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the UI feature.
type Handler struct{}

// NewHandler creates a new handler for the UI feature.
func NewHandler() *Handler {
	return &Handler{}
}

// RenderForge renders the lyric-to-experience forge demo page.
func (h *Handler) RenderForge(c *fiber.Ctx) error {
	slog.Debug("RenderForge handler called")
	return c.Render("forge", fiber.Map{})
}
