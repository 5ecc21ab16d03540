package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"tasktree/internal/model"
)

// saveReq is the write request body. Tasks is bound as raw JSON first so a
// missing field, a null, and a non-array can each produce the right 400.
type saveReq struct {
	AuthorID string          `json:"authorId"`
	Tasks    json.RawMessage `json:"tasks"`

	tasks []model.Task
}

// processSaveReq binds and validates the task write request body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errors.New("authorId and tasks are required")
	}
	return req, req.validate()
}

func (r *saveReq) validate() error {
	if r.AuthorID == "" || len(r.Tasks) == 0 || string(r.Tasks) == "null" {
		return errors.New("authorId and tasks are required")
	}
	if err := json.Unmarshal(r.Tasks, &r.tasks); err != nil {
		return errors.New("tasks must be an array")
	}
	return nil
}
