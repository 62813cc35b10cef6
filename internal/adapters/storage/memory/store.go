package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"training-pets/internal/ports/store"
)

// Store guarda documentos en memoria, por colección y en orden de inserción.
// Sirve para dev y para tests deterministas del router; la forma de los
// documentos (tags bson, _id string) es la misma que con el motor real.
type Store struct {
	mu   sync.RWMutex
	data map[string][]store.Document
}

func New() *Store {
	return &Store{
		data: make(map[string][]store.Document),
	}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}

	id := store.NewID()
	d["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = append(s.data[collection], d)

	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Document, 0)
	for _, d := range s.data[collection] {
		if !matches(d, filter) {
			continue
		}
		out = append(out, clone(d))
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) UpdateByID(ctx context.Context, collection string, id string, set store.Document) error {
	if !store.ValidID(id) {
		return store.ErrInvalidID
	}

	// Mismo roundtrip bson que en Insert, para que los valores del set
	// (time.Time, []string) queden con los tipos que devolvería el motor.
	nset, err := toDocument(set)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.data[collection] {
		if d["_id"] == id {
			merged := clone(d)
			for k, v := range nset {
				merged[k] = v
			}
			s.data[collection][i] = merged
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	// Orden estable (útil en tests).
	sort.Strings(names)
	return names, nil
}

func (s *Store) Status() store.Status {
	return store.Status{State: store.StateConnected}
}

// toDocument pasa el struct por bson para respetar los mismos tags
// que usaría el motor real.
func toDocument(doc any) (store.Document, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return store.Document(d), nil
}

func matches(d store.Document, filter store.Filter) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(d[k], v) {
			return false
		}
	}
	return true
}

func clone(d store.Document) store.Document {
	out := make(store.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
