package tasklist

import (
	"context"

	"tasktree/internal/model"
)

type UseCase interface {
	// Load returns the user's task tree. Unknown user → ErrUserNotFound,
	// distinct from a previously saved empty list.
	Load(ctx context.Context, authorID string) ([]model.Task, error)

	// Save replaces the user's entire tree. Unknown user → ErrUserNotFound.
	// Idempotent; the last writer for a given user wins.
	Save(ctx context.Context, authorID string, tasks []model.Task) error

	// Provision creates the user record with an empty tree. Invoked by the
	// identity webhook on user.created; duplicate provision is a no-op.
	Provision(ctx context.Context, authorID string) error

	// Deprovision deletes the user record and its tree. Invoked by the
	// identity webhook on user.deleted; missing user is a no-op.
	Deprovision(ctx context.Context, authorID string) error
}
