package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/nyashahama/bkw-backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

// Migrations are embedded so the binary carries its own schema.
// File order follows the foreign key graph: users, services, subcategories,
// appointments, booking_status, bookings, payments, wedding_plans.
//
//go:embed migrations/*.sql
var migrations embed.FS

// VersionTable is where tern records the applied migration version.
const VersionTable = "schema_version"

// Provision creates the application database if needed and brings its
// schema up to date.
//
// Failures are logged and swallowed: the server still starts against a
// partially initialized schema, and later queries surface the problem.
func Provision(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) {
	if err := EnsureDatabase(ctx, logger, cfg.Database); err != nil {
		logger.Error().Err(err).Str("database", cfg.Database.Name).Msg("error creating database")
	}

	if err := Migrate(ctx, logger, cfg); err != nil {
		logger.Error().Err(err).Msg("error creating tables")
	}
}

// EnsureDatabase issues CREATE DATABASE against the maintenance database.
// An existing database (SQLSTATE 42P04) counts as success.
func EnsureDatabase(ctx context.Context, logger *zerolog.Logger, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, DSN(cfg, cfg.MaintenanceDB))
	if err != nil {
		return fmt.Errorf("connecting to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.Name}.Sanitize())
	switch {
	case err == nil:
		logger.Info().Str("database", cfg.Name).Msg("database created successfully")
		return nil
	case sqlerr.Is(err, sqlerr.DuplicateDatabase):
		logger.Info().Str("database", cfg.Name).Msg("database already exists")
		return nil
	default:
		return err
	}
}

// Migrate runs the embedded migrations with jackc/tern over a single
// connection to the application database.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database, cfg.Database.Name))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return MigrateConn(ctx, logger, conn)
}

// MigrateConn applies the embedded migrations over an open connection.
func MigrateConn(ctx context.Context, logger *zerolog.Logger, conn *pgx.Conn) error {
	m, err := tern.NewMigrator(ctx, conn, VersionTable)
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
