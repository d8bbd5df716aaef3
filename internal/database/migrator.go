package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/deppfellow/stroski-api/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate prepares the store schema for the configured driver: tern
// migrations for postgres, secondary indexes for mongo, nothing for memory.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, db *Database) error {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return migratePostgres(ctx, logger, cfg)
	case config.DriverMongo:
		return ensureMongoIndexes(ctx, logger, db.Mongo)
	default:
		return nil
	}
}

// migratePostgres uses a dedicated connection, not the pool, and records
// applied versions in the schema_version table.
func migratePostgres(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// ensureMongoIndexes is idempotent; mongo ignores identical index specs.
func ensureMongoIndexes(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		CollectionReports: {
			Keys:    bson.D{{Key: "avtor", Value: 1}},
			Options: options.Index().SetName("avtor_idx"),
		},
		CollectionExpenses: {
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("created_at_idx"),
		},
		CollectionEmployees: {
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("created_at_idx"),
		},
	}

	for collection, index := range indexes {
		name, err := db.Collection(collection).Indexes().CreateOne(ctx, index)
		if err != nil {
			return fmt.Errorf("creating index on %s: %w", collection, err)
		}
		logger.Debug().Str("collection", collection).Str("index", name).Msg("mongo index ensured")
	}

	logger.Info().Msg("mongo indexes up to date")
	return nil
}
