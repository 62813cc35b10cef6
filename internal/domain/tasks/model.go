package tasks

import "time"

// Status es una string libre: los handlers solo escriben "pending" (default)
// o "completed" (vía complete/PATCH), pero no se valida ningún grafo de
// transiciones. Se documentan los valores esperados.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task es la unidad de agenda: un ejercicio planificado para un perro.
// dog_id y exercise_id son referencias débiles (strings opacos, sin chequeo
// de existencia contra la colección referida).
type Task struct {
	DogID        string     `bson:"dog_id,omitempty" json:"dog_id,omitempty"`
	ExerciseID   string     `bson:"exercise_id,omitempty" json:"exercise_id,omitempty"`
	Title        string     `bson:"title" json:"title" validate:"required"`
	Steps        []string   `bson:"steps" json:"steps"`
	ScheduledFor *time.Time `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	Status       string     `bson:"status" json:"status"`
	Language     string     `bson:"language" json:"language"` // en/he
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
