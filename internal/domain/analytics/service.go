package analytics

import (
	"context"

	"training-pets/internal/ports/store"
)

// Summary es el agregado de dos campos del diseño original.
// SuccessRate es nil cuando no hay ningún ProgressLog que promediar.
type Summary struct {
	TotalTasks     int      `json:"total_tasks"`
	CompletedTasks int      `json:"completed_tasks"`
	SuccessRate    *float64 `json:"success_rate"`
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Summarize recalcula desde cero escaneando las colecciones task y
// progresslog completas (limit 0 = sin tope). Sin mantenimiento incremental
// ni cache: ese es el techo de escalabilidad asumido por el diseño.
func (s *Service) Summarize(ctx context.Context, dogID string) (Summary, error) {
	filter := store.Filter{}
	if dogID != "" {
		filter["dog_id"] = dogID
	}

	tks, err := s.store.Find(ctx, store.CollectionTask, filter, 0)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{TotalTasks: len(tks)}
	for _, t := range tks {
		if t["status"] == "completed" {
			out.CompletedTasks++
		}
	}

	logs, err := s.store.Find(ctx, store.CollectionProgressLog, filter, 0)
	if err != nil {
		return Summary{}, err
	}

	if len(logs) > 0 {
		successes := 0
		for _, l := range logs {
			if ok, _ := l["success"].(bool); ok {
				successes++
			}
		}
		rate := float64(successes) / float64(len(logs))
		out.SuccessRate = &rate
	}

	return out, nil
}
