package dogs

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

func (s *Service) Create(ctx context.Context, d Dog) (string, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.CreatedAt = s.now().UTC()

	return s.store.Insert(ctx, store.CollectionDog, d)
}

func (s *Service) List(ctx context.Context, limit int64) ([]store.Document, error) {
	return s.store.Find(ctx, store.CollectionDog, store.Filter{}, limit)
}
