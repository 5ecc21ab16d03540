package identity

import (
	"tasktree/internal/tasklist"
	pkgLog "tasktree/pkg/log"
)

type Handler struct {
	tasklistUC tasklist.UseCase
	security   *SecurityValidator
	l          pkgLog.Logger
}

func NewHandler(
	tasklistUC tasklist.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		tasklistUC: tasklistUC,
		security:   NewSecurityValidator(securityConfig),
		l:          l,
	}
}
