package live

import (
	"context"
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

func (s *Service) Create(ctx context.Context, ls LiveSession) (string, error) {
	if ls.Status == "" {
		ls.Status = StatusIdle
	}
	ls.CreatedAt = s.now().UTC()

	return s.store.Insert(ctx, store.CollectionLiveSession, ls)
}

func (s *Service) List(ctx context.Context, dogID string, limit int64) ([]store.Document, error) {
	filter := store.Filter{}
	if dogID != "" {
		filter["dog_id"] = dogID
	}
	return s.store.Find(ctx, store.CollectionLiveSession, filter, limit)
}
