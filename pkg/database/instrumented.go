package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"hrms.service/internal/config"
)

// NewInstrumentedClient creates a MongoDB client with OpenTelemetry
// instrumentation. The monitor intercepts every command and records a
// span for it.
func NewInstrumentedClient(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetMonitor(otelmongo.NewMonitor())

	return connect(ctx, opts)
}
