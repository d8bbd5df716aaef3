// Package database establishes the connection to the record store.
//
// Three drivers are supported:
//   - mongo: the default document store (official mongo-driver v2)
//   - postgres: a pgx connection pool with tern migrations
//   - memory: no connection at all; repositories keep records in-process
//
// It handles:
//   - building client/pool options from config
//   - wiring command logging (mongo event monitor, pgx tracelog) in local env
//   - optional New Relic instrumentation (nrpgx5)
//   - pinging the store so startup fails fast
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/stroski-api/internal/config"
	loggerConfig "github.com/deppfellow/stroski-api/internal/logger"
)

// Collection (mongo) names. Postgres uses the tables from migrations/.
const (
	CollectionExpenses  = "stroski"
	CollectionEmployees = "zaposleni"
	CollectionReports   = "financna_porocila"
)

// DatabasePingTimeout is how long startup waits for the store to answer.
const DatabasePingTimeout = 10 * time.Second

// Database wraps whichever store handle the configured driver produced.
// Exactly one of Mongo and Pool is set for the mongo and postgres drivers;
// both are nil for the memory driver.
type Database struct {
	Driver string
	Mongo  *mongo.Database
	Pool   *pgxpool.Pool

	mongoClient *mongo.Client
	log         *zerolog.Logger
}

// New connects to the store selected by cfg.Database.Driver and pings it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var (
		db  *Database
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverMongo:
		db, err = newMongo(cfg, logger)
	case config.DriverPostgres:
		db, err = newPostgres(cfg, logger, loggerService)
	case config.DriverMemory:
		logger.Warn().Msg("using in-memory store, records are lost on restart")
		return &Database{Driver: config.DriverMemory, log: logger}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", db.Driver).Msg("connected to the database")

	return db, nil
}

// Ping checks the store is reachable. The memory driver is always up.
func (db *Database) Ping(ctx context.Context) error {
	switch {
	case db.mongoClient != nil:
		return pingMongo(ctx, db.mongoClient)
	case db.Pool != nil:
		return db.Pool.Ping(ctx)
	default:
		return nil
	}
}

// Close releases the store connection.
func (db *Database) Close() error {
	db.log.Info().Str("driver", db.Driver).Msg("closing database connection")

	if db.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout)
		defer cancel()
		if err := db.mongoClient.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect from mongo: %w", err)
		}
	}

	if db.Pool != nil {
		db.Pool.Close()
	}

	return nil
}
