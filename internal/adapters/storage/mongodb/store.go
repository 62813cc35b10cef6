package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"training-pets/internal/ports/store"
)

type Store struct {
	db *mongo.Database
}

// Open conecta al motor de documentos y verifica con un ping corto.
// Si falla, el caller decide el modo degradado (store.Unavailable).
func Open(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{db: client.Database(dbName)}, nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]store.Document, 0)
	for cur.Next(ctx) {
		var d store.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		// El driver devuelve _id como ObjectID; el contrato lo rinde como string.
		if oid, ok := d["_id"].(primitive.ObjectID); ok {
			d["_id"] = oid.Hex()
		}
		out = append(out, d)
	}

	return out, cur.Err()
}

func (s *Store) UpdateByID(ctx context.Context, collection string, id string, set store.Document) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *Store) Status() store.Status {
	return store.Status{State: store.StateConnected}
}
