package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tasktree/internal/tasklist/repository"
	"tasktree/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the tasklist domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("tasklist/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tasklist/repository/postgre.%s", method)
}
