package progress

import "time"

// ProgressLog es un evento append-only: el resultado de un intento sobre una
// tarea. No existe update ni delete para esta colección.
// Success es puntero para que "false" sea distinguible de "ausente".
type ProgressLog struct {
	TaskID    string    `bson:"task_id" json:"task_id" validate:"required"`
	DogID     string    `bson:"dog_id,omitempty" json:"dog_id,omitempty"`
	Success   *bool     `bson:"success" json:"success" validate:"required"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Score     *float64  `bson:"score,omitempty" json:"score,omitempty" validate:"omitempty,gte=0,lte=1"`
	StepIndex *int      `bson:"step_index,omitempty" json:"step_index,omitempty" validate:"omitempty,gte=0"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
