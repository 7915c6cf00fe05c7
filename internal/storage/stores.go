package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/meltforce/liftlog/internal/models"
)

// TemplateStore owns the workout template collection: most-recent-first,
// written through to the KV on every change. All access is serialized; a
// corrupt or missing stored value loads as the empty collection rather than
// failing startup.
type TemplateStore struct {
	mu        sync.Mutex
	kv        KV
	log       *slog.Logger
	templates []models.WorkoutTemplate
}

// NewTemplateStore loads the template collection from kv.
func NewTemplateStore(ctx context.Context, kv KV, log *slog.Logger) *TemplateStore {
	s := &TemplateStore{kv: kv, log: log}
	s.templates = loadCollection[models.WorkoutTemplate](ctx, kv, KeyTemplates, log)
	return s
}

// All returns a copy of the collection, newest first.
func (s *TemplateStore) All() []models.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// Get returns the template with the given ID.
func (s *TemplateStore) Get(id string) (models.WorkoutTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.WorkoutTemplate{}, false
}

// Add prepends a template and persists the whole collection.
func (s *TemplateStore) Add(ctx context.Context, t models.WorkoutTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append([]models.WorkoutTemplate{t}, s.templates...)
	return saveCollection(ctx, s.kv, KeyTemplates, s.templates)
}

// Delete removes the template with the given ID, if present, and persists.
// Deleting never touches history: sessions carry their own name snapshot.
func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.templates[:0:0]
	for _, t := range s.templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.templates) {
		return nil
	}
	s.templates = kept
	return saveCollection(ctx, s.kv, KeyTemplates, s.templates)
}

// Len returns the number of stored templates.
func (s *TemplateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.templates)
}

// HistoryStore owns the finished-session collection. Entries are append-only
// from the application's point of view: the only writer is the finalizer's
// prepend.
type HistoryStore struct {
	mu       sync.Mutex
	kv       KV
	log      *slog.Logger
	sessions []models.WorkoutSession
}

// NewHistoryStore loads the history collection from kv.
func NewHistoryStore(ctx context.Context, kv KV, log *slog.Logger) *HistoryStore {
	s := &HistoryStore{kv: kv, log: log}
	s.sessions = loadCollection[models.WorkoutSession](ctx, kv, KeyHistory, log)
	return s
}

// All returns a copy of history, newest first.
func (s *HistoryStore) All() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Append prepends a finalized session and persists the whole collection.
func (s *HistoryStore) Append(ctx context.Context, session models.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]models.WorkoutSession{session}, s.sessions...)
	return saveCollection(ctx, s.kv, KeyHistory, s.sessions)
}

// Len returns the number of finished sessions.
func (s *HistoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// loadCollection reads and decodes one collection. Absent and unreadable
// values both degrade to empty: bad persisted data must never block startup.
func loadCollection[T any](ctx context.Context, kv KV, key string, log *slog.Logger) []T {
	data, err := kv.Load(ctx, key)
	if err != nil {
		log.Warn("loading collection failed, starting empty", "key", key, "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("stored collection is corrupt, resetting", "key", key, "error", err)
		return nil
	}
	return items
}

// saveCollection encodes and writes one whole collection.
func saveCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}
