package usecase

import (
	"context"
	"errors"

	"tasktree/internal/tasklist"
	"tasktree/internal/tasklist/repository"
)

// Provision creates the user record with an empty tree when the identity
// provider reports user.created. Re-delivered events are tolerated: an
// existing record is logged and left alone.
func (uc *implUseCase) Provision(ctx context.Context, authorID string) error {
	existing, err := uc.repo.GetUser(ctx, authorID)
	if err != nil {
		return err
	}
	if existing.AuthorID != "" {
		uc.l.Warnf(ctx, "Provision: user %s already exists", authorID)
		return nil
	}

	_, err = uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		AuthorID: authorID,
		Tasks:    tasklist.EmptyTasks,
	})
	if errors.Is(err, repository.ErrDuplicateUser) {
		// Lost a race with a concurrent delivery of the same event.
		uc.l.Warnf(ctx, "Provision: user %s created concurrently", authorID)
		return nil
	}
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "Provision: created user %s", authorID)
	return nil
}

// Deprovision removes the user record when the identity provider reports
// user.deleted. A user that was never provisioned is logged and ignored.
func (uc *implUseCase) Deprovision(ctx context.Context, authorID string) error {
	deleted, err := uc.repo.DeleteUser(ctx, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		uc.l.Warnf(ctx, "Deprovision: user %s not found", authorID)
		return nil
	}

	uc.l.Infof(ctx, "Deprovision: deleted user %s", authorID)
	return nil
}
