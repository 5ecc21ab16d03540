package usecase

import (
	"context"
	"encoding/json"

	"tasktree/internal/model"
	"tasktree/internal/tasklist"
	"tasktree/internal/tasklist/repository"
)

// Load returns the stored task tree for authorID.
// A user that has never been provisioned yields ErrUserNotFound; a user
// saved with an empty tree yields an empty (non-nil) slice. Callers rely
// on that distinction to show the right advisory.
func (uc *implUseCase) Load(ctx context.Context, authorID string) ([]model.Task, error) {
	user, err := uc.repo.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if user.AuthorID == "" {
		return nil, tasklist.ErrUserNotFound
	}

	blob := user.Tasks
	if blob == "" {
		blob = tasklist.EmptyTasks
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(blob), &tasks); err != nil {
		uc.l.Errorf(ctx, "Load: corrupt task blob for %s: %v", authorID, err)
		return nil, tasklist.ErrMalformedRecord
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Save replaces the user's entire tree with tasks. The record must already
// exist; saves are whole-blob and last-write-wins.
func (uc *implUseCase) Save(ctx context.Context, authorID string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	blob, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	user, err := uc.repo.UpdateTasks(ctx, repository.UpdateTasksOptions{
		AuthorID: authorID,
		Tasks:    string(blob),
	})
	if err != nil {
		return err
	}
	if user.AuthorID == "" {
		return tasklist.ErrUserNotFound
	}

	uc.l.Debugf(ctx, "Save: stored %d top-level tasks for %s", len(tasks), authorID)
	return nil
}
