package tasks

import (
	"context"
	"strings"
	"time"

	"training-pets/internal/ports/store"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

func (s *Service) Create(ctx context.Context, t Task) (string, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Steps == nil {
		t.Steps = []string{}
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Language == "" {
		t.Language = "en"
	}

	now := s.now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	return s.store.Insert(ctx, store.CollectionTask, t)
}

// ListFilter filtra por igualdad exacta; campos vacíos no filtran.
type ListFilter struct {
	DogID  string
	Status string
}

func (s *Service) List(ctx context.Context, f ListFilter, limit int64) ([]store.Document, error) {
	filter := store.Filter{}
	if f.DogID != "" {
		filter["dog_id"] = f.DogID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return s.store.Find(ctx, store.CollectionTask, filter, limit)
}

// Update aplica un descriptor sparse: solo los pares (campo, valor)
// presentes en `set` se escriben. El timestamp updated_at se estampa
// siempre, incluso con un set vacío.
func (s *Service) Update(ctx context.Context, id string, set store.Document) error {
	merged := store.Document{}
	for k, v := range set {
		merged[k] = v
	}
	merged["updated_at"] = s.now().UTC()

	return s.store.UpdateByID(ctx, store.CollectionTask, id, merged)
}

// Complete fuerza status=completed sin mirar el estado anterior.
// Es idempotente: repetirlo deja el mismo estado observable.
func (s *Service) Complete(ctx context.Context, id string) error {
	return s.store.UpdateByID(ctx, store.CollectionTask, id, store.Document{
		"status":     StatusCompleted,
		"updated_at": s.now().UTC(),
	})
}
