package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/deppfellow/stroski-api/internal/config"
	loggerConfig "github.com/deppfellow/stroski-api/internal/logger"
)

func newMongo(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)

	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetServerAPIOptions(serverAPI).
		SetAppName(cfg.Observability.ServiceName).
		SetMaxPoolSize(uint64(cfg.Database.MaxPoolSize)).
		SetMinPoolSize(uint64(cfg.Database.MinPoolSize)).
		SetConnectTimeout(cfg.Database.ConnectTimeout).
		SetMaxConnIdleTime(cfg.Database.MaxConnIdle)

	// Command logging is noisy, keep it to local runs.
	if cfg.Primary.Env == "local" {
		opts.SetMonitor(loggerConfig.NewMongoMonitor(*logger, cfg.Observability.Logging.SlowQueryThreshold))
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return &Database{
		Driver:      config.DriverMongo,
		Mongo:       client.Database(cfg.Database.Name),
		mongoClient: client,
		log:         logger,
	}, nil
}

func pingMongo(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
