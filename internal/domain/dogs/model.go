package dogs

import "time"

// Dog es el perfil de un perro en entrenamiento.
// Los tags bson definen la forma exacta del documento en la colección "dog".
type Dog struct {
	Name      string    `bson:"name" json:"name" validate:"required"`
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeMonths *int      `bson:"age_months,omitempty" json:"age_months,omitempty" validate:"omitempty,gte=0"`
	WeightKg  *float64  `bson:"weight_kg,omitempty" json:"weight_kg,omitempty" validate:"omitempty,gte=0"`
	OwnerName string    `bson:"owner_name,omitempty" json:"owner_name,omitempty"`
	Tags      []string  `bson:"tags" json:"tags"` // ej: puppy, reactive, agility
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
