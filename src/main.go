package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/config"
	"github.com/contre95/soundgate/src/features/hosting"
	"github.com/contre95/soundgate/src/features/library"
	"github.com/contre95/soundgate/src/features/logging"
	"github.com/contre95/soundgate/src/features/metrics"
	"github.com/contre95/soundgate/src/features/recovery"
	"github.com/contre95/soundgate/src/features/uploading"
	"github.com/contre95/soundgate/src/infra/database"
	"github.com/contre95/soundgate/src/infra/probe"
	"github.com/contre95/soundgate/src/infra/storage"
	"github.com/contre95/soundgate/src/infra/store"
	"github.com/contre95/soundgate/src/infra/watcher"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	cfg := cfgManager.Get()

	// Catalog: seeds plus whatever the sidecar holds
	sidecar := store.NewJSONStore(cfg.CatalogPath)
	catalog := experiences.NewCatalog(sidecar)

	stor := storage.New(cfg.PublicPath, cfg.UploadFolder)
	if err := stor.EnsureDir(); err != nil {
		log.Fatalf("failed to prepare storage: %v", err)
	}

	// Activity log
	eventLog, err := database.NewSqliteEventLog(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open activity database: %v", err)
	}
	defer eventLog.Close()
	activityService := activity.NewService(eventLog)

	// Optional Telegram notifier
	var notifier *hosting.TelegramNotifier
	if cfg.Telegram.Enabled {
		notifier, err = hosting.NewTelegramNotifier(cfgManager)
		if err != nil {
			slog.Error("Failed to initialize Telegram notifier", "error", err)
		}
	}

	// Services
	libraryService := library.NewService(catalog, stor, activityService, notifier)
	uploadingService := uploading.NewService(catalog, stor, probe.NewAudioProbe(), activityService, notifier)
	recoveryService := recovery.NewService(catalog, stor, activityService, notifier)

	stats := catalog.Stats()
	metrics.SetCatalogSize(stats.Seeds, stats.Uploaded)
	slog.Info("Catalog loaded", "total", stats.Total, "seeds", stats.Seeds, "uploaded", stats.Uploaded, "sidecar", stats.SidecarExists)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage drift watcher
	if cfg.Watcher.Enabled {
		driftChan := make(chan struct{}, 1)
		storageWatcher, err := watcher.NewWatcher(driftChan)
		if err != nil {
			slog.Error("Failed to create storage watcher", "error", err)
		} else if err := storageWatcher.Start(ctx, stor.Dir()); err != nil {
			slog.Error("Failed to start storage watcher", "error", err)
		} else {
			defer storageWatcher.Stop()
			go func() {
				for range driftChan {
					libraryService.CheckDrift(ctx)
				}
			}()
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, libraryService, uploadingService, recoveryService, activityService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfg.Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
