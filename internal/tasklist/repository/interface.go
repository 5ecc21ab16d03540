package repository

import (
	"context"

	"tasktree/internal/tasklist"
)

// Repository is the composed interface for the tasklist data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User record.
type UserRepository interface {
	// CreateUser inserts a new record. An existing authorId yields
	// ErrDuplicateUser.
	CreateUser(ctx context.Context, opt CreateUserOptions) (tasklist.User, error)

	// GetUser fetches one record by authorId. Not-found returns a
	// zero-value User (AuthorID == "") with no error.
	GetUser(ctx context.Context, authorID string) (tasklist.User, error)

	// UpdateTasks replaces the stored blob. Not-found returns a
	// zero-value User with no error.
	UpdateTasks(ctx context.Context, opt UpdateTasksOptions) (tasklist.User, error)

	// DeleteUser removes the record. The bool reports whether a row
	// actually existed.
	DeleteUser(ctx context.Context, authorID string) (bool, error)
}
