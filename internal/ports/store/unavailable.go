package store

import "context"

// Unavailable es el handle degradado que se inyecta cuando no hay conexión
// al motor. Las lecturas devuelven vacío (un listado nunca responde 500 por
// falta de base); las escrituras fallan con ErrUnavailable.
type Unavailable struct {
	// Reason distingue "nunca se configuró" (nil) de "falló la conexión".
	Reason error
}

func (u Unavailable) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", ErrUnavailable
}

func (u Unavailable) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	return []Document{}, nil
}

func (u Unavailable) UpdateByID(ctx context.Context, collection string, id string, set Document) error {
	return ErrUnavailable
}

func (u Unavailable) CollectionNames(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (u Unavailable) Status() Status {
	if u.Reason != nil {
		return Status{State: StateFailed, Err: u.Reason}
	}
	return Status{State: StateUnavailable}
}
