package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and local experiments.
// Entities go through the same BSON encoding as MongoStore, so documents read
// back have the same shape and types.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string][]bson.Raw{}}
}

// Initialized always reports true
func (m *MemoryStore) Initialized() bool {
	return true
}

// Create encodes entity, assigns a fresh ObjectID and appends it to collection
func (m *MemoryStore) Create(_ context.Context, collection string, entity any) (string, error) {
	doc, err := toDocument(entity)
	if err != nil {
		return "", &Error{Op: "create", Collection: collection, Err: err}
	}

	id := primitive.NewObjectID()
	doc[IDField] = id

	raw, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return "", &Error{Op: "create", Collection: collection, Err: err}
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], raw)
	m.mu.Unlock()

	return id.Hex(), nil
}

// List decodes every stored document of collection matching filter, in insertion order
func (m *MemoryStore) List(_ context.Context, collection string, filter Filter) ([]Document, error) {
	m.mu.RLock()
	stored := m.collections[collection]
	m.mu.RUnlock()

	docs := make([]Document, 0, len(stored))
	for _, raw := range stored {
		doc, err := decode(raw)
		if err != nil {
			return nil, &Error{Op: "list", Collection: collection, Err: err}
		}
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// CollectionNames returns the names of collections holding at least one document
func (m *MemoryStore) CollectionNames(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Count returns the number of documents in collection
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

func toDocument(entity any) (Document, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func decode(raw []byte) (Document, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var m bson.M
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return Document(m), nil
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
