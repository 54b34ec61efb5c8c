package hosting

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/config"
	"github.com/contre95/soundgate/src/features/gate"
	"github.com/contre95/soundgate/src/features/library"
	"github.com/contre95/soundgate/src/features/maintenance"
	"github.com/contre95/soundgate/src/features/metrics"
	"github.com/contre95/soundgate/src/features/recovery"
	"github.com/contre95/soundgate/src/features/ui"
	"github.com/contre95/soundgate/src/features/uploading"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server. Routes registered before the gate
// middleware (gate itself, static assets, health, metrics) stay reachable
// without a granted session; everything after requires the access code.
func NewServer(cfg *config.Manager, libraryService *library.Service, uploadingService *uploading.Service, recoveryService *recovery.Service, activityService *activity.Service) *Server {
	engine := html.New("./views", ".html")
	engine.Debug(cfg.Get().Logger.Level == "debug")
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
		AppName:               "Soundgate",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
		BodyLimit:             200 * 1024 * 1024, // Short audio only; 200MB is plenty.
	})

	app.Use(RequestLogMiddleware())

	sessions := session.New(session.Config{
		Expiration:     12 * time.Hour,
		CookieHTTPOnly: true,
	})

	app.Static("/", cfg.Get().PublicPath)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	metrics.RegisterRoutes(app)
	gate.RegisterRoutes(app, gate.NewService(cfg), sessions)

	app.Use(gate.RequireCode(sessions))

	library.RegisterRoutes(app, libraryService)
	uploading.RegisterRoutes(app, uploadingService)
	maintenance.RegisterRoutes(app, cfg, libraryService, recoveryService, activityService)
	activity.RegisterRoutes(app, activityService)
	ui.RegisterRoutes(app, ui.NewHandler())

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
