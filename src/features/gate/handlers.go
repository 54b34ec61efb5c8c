package gate

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const grantedKey = "access_granted"

// Handler is the handler for the gate feature.
type Handler struct {
	service  *Service
	sessions *session.Store
}

// NewHandler creates a new handler for the gate feature.
func NewHandler(service *Service, sessions *session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// ShowGate renders the access-code page.
func (h *Handler) ShowGate(c *fiber.Ctx) error {
	return c.Render("gate", fiber.Map{})
}

// SubmitCode checks the submitted code and grants the session on success.
func (h *Handler) SubmitCode(c *fiber.Ctx) error {
	code := c.FormValue("code")
	if !h.service.CheckCode(code) {
		slog.Debug("Gate rejected access code")
		return c.Render("gate", fiber.Map{
			"Error": "Invalid access code",
		})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		slog.Error("Failed to get session", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("session error")
	}
	sess.Set(grantedKey, true)
	if err := sess.Save(); err != nil {
		slog.Error("Failed to save session", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("session error")
	}
	slog.Info("Gate passed, session granted")
	return c.Redirect("/")
}

// RequireCode redirects to the gate unless the session has been granted.
func RequireCode(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			slog.Error("Failed to get session", "error", err)
			return c.Redirect("/gate")
		}
		if granted, ok := sess.Get(grantedKey).(bool); !ok || !granted {
			return c.Redirect("/gate")
		}
		return c.Next()
	}
}
