package activity

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the activity feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the activity feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetRecent returns the latest activity events as JSON.
func (h *Handler) GetRecent(c *fiber.Ctx) error {
	slog.Debug("GetRecent handler called")
	limit := c.QueryInt("limit", 25)

	events, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading activity")
	}
	return c.JSON(events)
}
