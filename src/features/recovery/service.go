package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/metrics"
	"github.com/contre95/soundgate/src/infra/storage"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Notifier announces catalog changes to an external channel.
type Notifier interface {
	Notify(message string)
}

// Service rebuilds the uploaded set from the files physically present in
// the upload folder. It is a destructive full replace: custom titles,
// authors and voices are lost and replaced with recovery placeholders.
type Service struct {
	catalog  *experiences.Catalog
	storage  *storage.Storage
	activity *activity.Service
	notifier Notifier
}

// NewService creates a new recovery service.
func NewService(catalog *experiences.Catalog, stor *storage.Storage, activityService *activity.Service, notifier Notifier) *Service {
	return &Service{
		catalog:  catalog,
		storage:  stor,
		activity: activityService,
		notifier: notifier,
	}
}

var titleCaser = cases.Title(language.Und)

// Rebuild resets the catalog to the seed set and reconstructs the uploaded
// set from the allowed audio files found in storage, sorted by name. Lyrics
// paths are assumed at <base>.txt without checking existence; the player
// degrades gracefully when the sheet is missing.
func (s *Service) Rebuild(ctx context.Context) error {
	names, err := s.storage.ListAudio()
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Upload folder missing, recovering to empty uploaded set", "dir", s.storage.Dir())
			names = nil
		} else {
			return fmt.Errorf("failed to scan storage: %w", err)
		}
	}

	saveErr := s.catalog.Rebuild(names, func(id, name string) experiences.Entry {
		base := name
		if i := strings.LastIndex(name, "."); i >= 0 {
			base = name[:i]
		}

		title := id
		if strings.TrimSpace(base) != "" {
			t := strings.ReplaceAll(base, "_", " ")
			t = strings.ReplaceAll(t, "-", " ")
			title = titleCaser.String(t)
		}

		return experiences.Entry{
			Title:   title,
			Author:  "Recovered Author",
			Voice:   "Recovered Voice",
			File:    s.storage.Rel(name),
			Lyrics:  s.storage.Rel(base + ".txt"),
			Vibe:    "Recovered from disk",
			Package: "EXP – Recovered Experiences",
		}
	})
	if saveErr != nil {
		slog.Error("Failed to persist recovered catalog", "error", saveErr)
	}

	stats := s.catalog.Stats()
	slog.Info("Rebuilt uploaded experiences from disk", "recovered", stats.Uploaded)
	metrics.Recoveries.Inc()
	metrics.SetCatalogSize(stats.Seeds, stats.Uploaded)
	s.activity.Record(ctx, activity.KindRecovery, "", fmt.Sprintf("recovered %d experiences from disk", stats.Uploaded))
	if s.notifier != nil {
		s.notifier.Notify(fmt.Sprintf("Catalog rebuilt from disk: %d experiences recovered", stats.Uploaded))
	}
	return saveErr
}
