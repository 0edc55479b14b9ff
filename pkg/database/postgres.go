package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgxpool connection pool. All application data access goes
// through DB.Scoped; the pool itself is only used for health checks.
type DB struct {
	Pool *pgxpool.Pool
}

type PoolConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func NewPostgresConnection(ctx context.Context, connString string, pc PoolConfig) (*DB, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Supabase transaction mode (PgBouncer) rejects named prepared statements.
	// set_config is transaction-local, so it is safe behind the pooler.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = pc.MaxConns
	if config.MaxConns == 0 {
		config.MaxConns = 25
	}
	config.MinConns = pc.MinConns
	if config.MinConns == 0 {
		config.MinConns = 2
	}
	config.MaxConnLifetime = pc.MaxConnLifetime
	if config.MaxConnLifetime == 0 {
		config.MaxConnLifetime = time.Hour
	}
	config.MaxConnIdleTime = pc.MaxConnIdleTime
	if config.MaxConnIdleTime == 0 {
		config.MaxConnIdleTime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *DB) Close() {
	db.Pool.Close()
}
