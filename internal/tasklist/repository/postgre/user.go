package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tasktree/internal/tasklist"
	repo "tasktree/internal/tasklist/repository"
)

// uniqueViolation is the Postgres error code for unique constraint breaks.
const uniqueViolation = "23505"

// CreateUser inserts a new User row and returns the created record.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (tasklist.User, error) {
	const query = `
		INSERT INTO users (author_id, tasks, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING author_id, tasks, created_at, updated_at`

	var user tasklist.User
	err := r.db.QueryRow(ctx, query, opt.AuthorID, opt.Tasks).Scan(
		&user.AuthorID, &user.Tasks, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return tasklist.User{}, repo.ErrDuplicateUser
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return tasklist.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetUser retrieves a single User by authorId.
// Returns zero-value User (AuthorID == "") when not found — do NOT return
// error for not-found.
func (r *implRepository) GetUser(ctx context.Context, authorID string) (tasklist.User, error) {
	const query = `
		SELECT author_id, tasks, created_at, updated_at
		FROM users
		WHERE author_id = $1`

	var user tasklist.User
	err := r.db.QueryRow(ctx, query, authorID).Scan(
		&user.AuthorID, &user.Tasks, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return tasklist.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return tasklist.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

// UpdateTasks replaces the stored blob and returns the updated record.
func (r *implRepository) UpdateTasks(ctx context.Context, opt repo.UpdateTasksOptions) (tasklist.User, error) {
	const query = `
		UPDATE users
		SET tasks = $1, updated_at = $2
		WHERE author_id = $3
		RETURNING author_id, tasks, created_at, updated_at`

	var user tasklist.User
	err := r.db.QueryRow(ctx, query, opt.Tasks, time.Now(), opt.AuthorID).Scan(
		&user.AuthorID, &user.Tasks, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return tasklist.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTasks"), err)
		return tasklist.User{}, repo.ErrFailedToUpdate
	}
	return user, nil
}

// DeleteUser removes a User by authorId.
func (r *implRepository) DeleteUser(ctx context.Context, authorID string) (bool, error) {
	const query = `DELETE FROM users WHERE author_id = $1`
	tag, err := r.db.Exec(ctx, query, authorID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}
