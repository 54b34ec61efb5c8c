package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/metrics"
	"github.com/contre95/soundgate/src/infra/storage"
)

// Notifier announces catalog changes to an external channel.
type Notifier interface {
	Notify(message string)
}

// Service is the domain service for the library feature: browsing the
// catalog and removing uploaded entries.
type Service struct {
	catalog  *experiences.Catalog
	storage  *storage.Storage
	activity *activity.Service
	notifier Notifier
}

// NewService creates a new library service.
func NewService(catalog *experiences.Catalog, stor *storage.Storage, activityService *activity.Service, notifier Notifier) *Service {
	return &Service{
		catalog:  catalog,
		storage:  stor,
		activity: activityService,
		notifier: notifier,
	}
}

// List returns the full catalog, seeds first.
func (s *Service) List() []experiences.Entry {
	return s.catalog.All()
}

// Grouped returns the catalog partitioned by package for display.
func (s *Service) Grouped() []experiences.PackageGroup {
	return s.catalog.Groups()
}

// Authors returns the sorted distinct authors for the filter list.
func (s *Service) Authors() []string {
	return s.catalog.Authors()
}

// Voices returns the sorted distinct voices for the filter list.
func (s *Service) Voices() []string {
	return s.catalog.Voices()
}

// Find returns the entry with the given id.
func (s *Service) Find(id string) (experiences.Entry, bool) {
	return s.catalog.Find(id)
}

// Stats returns catalog counts and sidecar presence.
func (s *Service) Stats() experiences.Stats {
	return s.catalog.Stats()
}

// SaveNow force-persists the uploaded subset. The error is reported to the
// caller for logging only; persistence failures never bubble to the user.
func (s *Service) SaveNow(ctx context.Context) error {
	err := s.catalog.SaveNow()
	if err != nil {
		slog.Error("Forced save failed", "error", err)
	} else {
		slog.Info("Uploaded experiences saved to sidecar")
	}
	s.activity.Record(ctx, activity.KindSave, "", "forced sidecar save")
	return err
}

// Delete removes an uploaded entry and its files. Seed entries and unknown
// ids are refused. File removal failures are swallowed: the record goes
// away regardless.
func (s *Service) Delete(ctx context.Context, id string) error {
	entry, ok := s.catalog.Find(id)
	if !ok {
		return experiences.ErrNotFound
	}
	if experiences.IsSeedID(id) {
		slog.Warn("Refusing to delete seed experience", "id", id)
		return experiences.ErrSeedEntry
	}

	if err := s.storage.Remove(entry.File); err != nil {
		slog.Warn("Failed to remove audio file", "id", id, "file", entry.File, "error", err)
	}
	if entry.HasLyrics() {
		if err := s.storage.Remove(entry.Lyrics); err != nil {
			slog.Warn("Failed to remove lyrics file", "id", id, "file", entry.Lyrics, "error", err)
		}
	}

	if err := s.catalog.Remove(id); err != nil {
		switch err {
		case experiences.ErrSeedEntry, experiences.ErrNotFound:
			return err
		default:
			// Persistence failed but the in-memory removal happened;
			// the next successful save reconciles the sidecar.
			slog.Error("Failed to persist catalog after delete", "id", id, "error", err)
		}
	}

	slog.Info("Experience deleted", "id", id, "title", entry.Title)
	stats := s.catalog.Stats()
	metrics.Deletions.Inc()
	metrics.SetCatalogSize(stats.Seeds, stats.Uploaded)
	s.activity.Record(ctx, activity.KindDelete, id, entry.Title)
	if s.notifier != nil {
		s.notifier.Notify(fmt.Sprintf("Experience deleted: %s (%s)", entry.Title, id))
	}
	return nil
}

// CheckDrift compares the upload folder against the catalog and reports how
// many audio files on disk no entry references. Used by the storage watcher.
func (s *Service) CheckDrift(ctx context.Context) int {
	names, err := s.storage.ListAudio()
	if err != nil {
		slog.Warn("Drift check could not list storage", "error", err)
		return 0
	}

	referenced := map[string]bool{}
	for _, e := range s.catalog.All() {
		referenced[e.File] = true
	}

	drift := 0
	for _, name := range names {
		if !referenced[s.storage.Rel(name)] {
			drift++
			slog.Warn("Audio file not referenced by catalog", "file", name)
		}
	}
	metrics.StorageDrift.Set(float64(drift))
	if drift > 0 {
		s.activity.Record(ctx, activity.KindDrift, "", fmt.Sprintf("%d unreferenced audio files in storage", drift))
	}
	return drift
}
