package activity

import (
	"context"
	"log/slog"
)

// Store persists activity events.
type Store interface {
	RecordEvent(ctx context.Context, event Event) error
	RecentEvents(ctx context.Context, limit int) ([]Event, error)
}

// Service is the domain service for the activity feed. Recording never
// fails the calling operation; a broken feed is a diagnostics problem, not
// a catalog problem.
type Service struct {
	store Store
}

// NewService creates a new activity service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record stores one event, logging failures instead of returning them.
func (s *Service) Record(ctx context.Context, kind, entryID, detail string) {
	if s == nil || s.store == nil {
		return
	}
	event := Event{Kind: kind, EntryID: entryID, Detail: detail}
	if err := s.store.RecordEvent(ctx, event); err != nil {
		slog.Warn("Failed to record activity event", "kind", kind, "entry", entryID, "error", err)
	}
}

// Recent returns the newest events.
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	events, err := s.store.RecentEvents(ctx, limit)
	if err != nil {
		slog.Error("Failed to load activity events", "error", err)
		return nil, err
	}
	return events, nil
}
