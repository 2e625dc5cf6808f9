// Package store is the generic document-store gateway: one create/list surface
// parameterized by collection name instead of one repository per entity.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the store-native identifier field of every document
const IDField = "_id"

// ErrNotInitialized is returned when the store handle was never connected
var ErrNotInitialized = errors.New("document store is not initialized")

// Filter is an equality filter. An empty Filter matches every document.
type Filter map[string]any

// Document is a stored document in its native representation, including IDField
type Document map[string]any

// Store persists entities into named collections
type Store interface {
	// Create inserts entity into collection and returns the generated identifier
	Create(ctx context.Context, collection string, entity any) (string, error)
	// List returns every document of collection matching filter, in natural order
	List(ctx context.Context, collection string, filter Filter) ([]Document, error)
}

// Prober reports on the health of the store for diagnostics
type Prober interface {
	Initialized() bool
	CollectionNames(ctx context.Context) ([]string, error)
}

// Error wraps every failure coming out of a Store
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IDString converts a store-native identifier to its public string form
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
