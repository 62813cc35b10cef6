package exercises

import (
	"context"
	"strings"
	"time"

	"training-pets/internal/ports/store"
)

const defaultDurationMin = 5

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

func (s *Service) Create(ctx context.Context, e Exercise) (string, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Difficulty == "" {
		e.Difficulty = DifficultyBeginner
	}
	if e.DurationMin == nil {
		d := defaultDurationMin
		e.DurationMin = &d
	}
	if e.Cues == nil {
		e.Cues = []string{}
	}
	if e.Goals == nil {
		e.Goals = []string{}
	}
	e.CreatedAt = s.now().UTC()

	return s.store.Insert(ctx, store.CollectionExercise, e)
}

func (s *Service) List(ctx context.Context, limit int64) ([]store.Document, error) {
	return s.store.Find(ctx, store.CollectionExercise, store.Filter{}, limit)
}
