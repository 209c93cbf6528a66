package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document in the collection carries
// the requested id.
var ErrNotFound = errors.New("document not found")

const (
	SortAsc  = 1
	SortDesc = -1
)

// Store runs single-document operations against one collection.
// Documents are keyed by their application-level "id" field, and the
// list order is fixed per collection at construction time.
type Store struct {
	coll    *mongo.Collection
	sortKey string
	sortDir int
}

func New(coll *mongo.Collection, sortKey string, sortDir int) *Store {
	return &Store{coll: coll, sortKey: sortKey, sortDir: sortDir}
}

func (s *Store) Create(ctx context.Context, doc interface{}) error {
	_, err := s.coll.InsertOne(ctx, doc)
	return err
}

// List decodes up to limit documents after skipping skip into results,
// which must be a pointer to a slice of the collection's model type.
func (s *Store) List(ctx context.Context, skip, limit int64, results interface{}) error {
	// SetLimit(0) means unlimited to the driver, but limit=0 here
	// means a page of zero documents
	if limit == 0 {
		return nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: s.sortKey, Value: s.sortDir}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

func (s *Store) Get(ctx context.Context, id string, result interface{}) error {
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Replace overwrites the whole document; the caller supplies the
// already merged representation.
func (s *Store) Replace(ctx context.Context, id string, doc interface{}) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
