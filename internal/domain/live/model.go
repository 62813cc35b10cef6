package live

import "time"

// Status de sesión: idle | active | ended.
const (
	StatusIdle   = "idle"
	StatusActive = "active"
	StatusEnded  = "ended"
)

// LiveSession registra una sesión de coaching en vivo. El canal websocket
// todavía no la persiste: el esquema y su colección existen para el CRUD y
// para el protocolo futuro que se monte sobre el canal.
type LiveSession struct {
	DogID     string    `bson:"dog_id,omitempty" json:"dog_id,omitempty"`
	TaskID    string    `bson:"task_id,omitempty" json:"task_id,omitempty"`
	Status    string    `bson:"status" json:"status" validate:"omitempty,oneof=idle active ended"`
	PeerID    string    `bson:"peer_id,omitempty" json:"peer_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
