package store

import "context"

// Collection is a typed view of one collection in a Store
type Collection[T any] struct {
	store Store
	name  string
}

// NewCollection binds entity type T to the named collection of s
func NewCollection[T any](s Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// Create inserts entity and returns its generated identifier
func (c *Collection[T]) Create(ctx context.Context, entity T) (string, error) {
	return c.store.Create(ctx, c.name, entity)
}

// List returns the documents matching filter
func (c *Collection[T]) List(ctx context.Context, filter Filter) ([]Document, error) {
	return c.store.List(ctx, c.name, filter)
}
