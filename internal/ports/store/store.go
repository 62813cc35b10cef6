package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("database not available")
)

// Document es un registro tal como vive en su colección: sin esquema fijo.
type Document = map[string]any

// Filter es igualdad exacta campo -> valor. Sin rangos, regex ni operadores lógicos.
type Filter map[string]any

type State string

const (
	StateConnected   State = "connected"
	StateUnavailable State = "unavailable"
	StateFailed      State = "failed"
)

// Status describe el estado del handle de conexión (para /test).
type Status struct {
	State State
	Err   error
}

// Store es el puerto genérico sobre el motor de documentos.
// Los handlers no conocen el driver: solo insert/find/update por colección.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
	UpdateByID(ctx context.Context, collection string, id string, set Document) error

	// CollectionNames es solo para diagnóstico (/test).
	CollectionNames(ctx context.Context) ([]string, error)

	Status() Status
}

// ValidID valida la forma del identificador (hex de ObjectID) sin tocar el store.
// Un id mal formado es 400; un id bien formado sin registro es 404.
func ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// NewID genera un identificador nuevo con la misma forma que asigna el motor.
// Lo usa el adapter en memoria para que ambos backends sean indistinguibles.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
