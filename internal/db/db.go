package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	once sync.Once
	pool *pgxpool.Pool
	err  error
)

// Connect opens the shared connection pool. Repeated calls return the same
// pool; hot-reload environments re-enter main without tearing the process
// down, so the pool must survive re-wiring.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	once.Do(func() {
		pool, err = pgxpool.New(ctx, url)
		if err != nil {
			err = fmt.Errorf("pgxpool.New: %w", err)
			return
		}
		if pingErr := pool.Ping(ctx); pingErr != nil {
			err = fmt.Errorf("pgxpool.Ping: %w", pingErr)
		}
	})
	return pool, err
}

// EnsureSchema creates the users table when it does not exist yet. The
// whole task tree lives in the tasks column as one JSON document.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
    author_id  TEXT PRIMARY KEY,
    tasks      TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	if _, execErr := pool.Exec(ctx, ddl); execErr != nil {
		return fmt.Errorf("create users table: %w", execErr)
	}
	return nil
}
