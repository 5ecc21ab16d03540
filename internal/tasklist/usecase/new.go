package usecase

import (
	"tasktree/internal/tasklist"
	"tasktree/internal/tasklist/repository"
	pkgLog "tasktree/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

var _ tasklist.UseCase = (*implUseCase)(nil)

// New creates a new tasklist UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
