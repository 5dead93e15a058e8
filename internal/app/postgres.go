package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
)

var globalPostgresPool *pgxpool.Pool

func MustConnectPostgres() {
	cfg := config.Global().Postgres

	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresURL())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to postgres")
}

// MustMigratePostgres creates the tasks table and its indexes if missing.
func MustMigratePostgres() {
	cfg := config.Global().Postgres

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	err := repository.NewPostgresRepository(globalPostgresPool).Migrate(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate postgres")
		panic(err)
	}
	globalLogger.Info().Msg("migrated postgres")
}

func DisconnectPostgres() {
	if globalPostgresPool == nil {
		return
	}
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
