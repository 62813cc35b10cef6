package progress

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

func (s *Service) Create(ctx context.Context, p ProgressLog) (string, error) {
	p.CreatedAt = s.now().UTC()
	return s.store.Insert(ctx, store.CollectionProgressLog, p)
}

type ListFilter struct {
	DogID  string
	TaskID string
}

func (s *Service) List(ctx context.Context, f ListFilter, limit int64) ([]store.Document, error) {
	filter := store.Filter{}
	if f.DogID != "" {
		filter["dog_id"] = f.DogID
	}
	if f.TaskID != "" {
		filter["task_id"] = f.TaskID
	}
	return s.store.Find(ctx, store.CollectionProgressLog, filter, limit)
}
