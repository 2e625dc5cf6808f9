package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store and Prober on a MongoDB database
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps db. A nil db yields an uninitialized store whose calls fail with ErrNotInitialized.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Initialized reports whether the store has a database handle
func (s *MongoStore) Initialized() bool {
	return s != nil && s.db != nil
}

// Create inserts entity into collection and returns the ObjectID as hex
func (s *MongoStore) Create(ctx context.Context, collection string, entity any) (string, error) {
	if !s.Initialized() {
		return "", &Error{Op: "create", Collection: collection, Err: ErrNotInitialized}
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, entity)
	if err != nil {
		return "", &Error{Op: "create", Collection: collection, Err: err}
	}
	return IDString(res.InsertedID), nil
}

// List returns all documents in collection matching filter
func (s *MongoStore) List(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if !s.Initialized() {
		return nil, &Error{Op: "list", Collection: collection, Err: ErrNotInitialized}
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, &Error{Op: "list", Collection: collection, Err: err}
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, &Error{Op: "list", Collection: collection, Err: err}
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, Document(m))
	}
	return docs, nil
}

// CollectionNames lists the collections of the database
func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Initialized() {
		return nil, &Error{Op: "list collections", Err: ErrNotInitialized}
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &Error{Op: "list collections", Err: err}
	}
	return names, nil
}

// Ping checks that the server is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	if !s.Initialized() {
		return &Error{Op: "ping", Err: ErrNotInitialized}
	}
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return &Error{Op: "ping", Err: err}
	}
	return nil
}
