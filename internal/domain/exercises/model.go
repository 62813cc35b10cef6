package exercises

import "time"

// Difficulty admite beginner | intermediate | advanced.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise es una entrada del catálogo de ejercicios. Sin referencias a otras
// colecciones: las tareas apuntan al ejercicio, no al revés.
type Exercise struct {
	Title       string    `bson:"title" json:"title" validate:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Difficulty  string    `bson:"difficulty" json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationMin *int      `bson:"duration_min" json:"duration_min" validate:"omitempty,gte=1"`
	Cues        []string  `bson:"cues" json:"cues"`
	Goals       []string  `bson:"goals" json:"goals"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
