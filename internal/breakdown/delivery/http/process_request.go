package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasktree/internal/model"
)

// generateReq is the subtask generation request body. Count defaults to the
// subtask cap when omitted; Intensity is clamped downstream.
type generateReq struct {
	Task           string `json:"task"`
	SubtaskFlatten string `json:"subtaskFlatten"`
	Count          int    `json:"count"`
	Intensity      int    `json:"intensity"`
}

// processGenerateReq binds and validates the generation request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errors.New("task is required")
	}
	if req.Count == 0 {
		req.Count = model.MaxSubtasks
	}
	return req, req.validate()
}

func (r *generateReq) validate() error {
	if r.Task == "" {
		return errors.New("task is required")
	}
	if r.Count < 1 || r.Count > model.MaxSubtasks {
		return errors.New("count must be between 1 and 5")
	}
	return nil
}
