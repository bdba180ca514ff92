package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms.service/internal/config"
)

// NewClient creates and verifies a new MongoDB client.
func NewClient(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	return connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
}

func connect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	// Ping to verify the connection is alive before serving traffic.
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	return client, nil
}
