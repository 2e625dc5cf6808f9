package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds the initial ping against the document store
const connectTimeout = 10 * time.Second

// ConnectDatabase opens a MongoDB client for cfg.DatabaseURL and returns the configured database.
// It returns (nil, nil) when no URL is configured so the caller can run with an uninitialized store.
func ConnectDatabase(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	if !cfg.DatabaseURLSet() {
		log.Println("DATABASE_URL not set, document store stays uninitialized")
		return nil, nil
	}

	opts := options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// The handle is still usable; requests will surface store errors until the server is reachable.
		log.Printf("Database ping failed: %v", err)
	} else {
		log.Println("Database connection established successfully")
	}

	return client.Database(cfg.GetDatabaseName()), nil
}

// DisconnectDatabase closes the client behind db. A nil db is a no-op.
func DisconnectDatabase(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	return nil
}
