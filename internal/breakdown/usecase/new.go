package usecase

import (
	"tasktree/internal/breakdown"
	"tasktree/pkg/gemini"
	pkgLog "tasktree/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm *gemini.Client
}

var _ breakdown.UseCase = (*implUseCase)(nil)

// New creates a new breakdown UseCase instance. llm may be nil when no
// API key is configured; Generate then fails with ErrMissingAPIKey.
func New(l pkgLog.Logger, llm *gemini.Client) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
