package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktree/internal/breakdown"
	"tasktree/pkg/response"
)

// Generate godoc
// @Summary     Generate subtasks for a task
// @Description Asks the language model for up to five subtask suggestions
// @Description for the given task, skipping any already-present subtasks.
// @Tags        Breakdown
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Task text, existing subtasks, count and detail level"
// @Success     200 {object} subtasksResp
// @Failure     400 {object} errResp "Missing task"
// @Failure     500 {object} errResp "Generation failed"
// @Router      /api/generate-subtasks [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}

	out, err := h.uc.Generate(ctx, breakdown.GenerateInput{
		Task:           req.Task,
		SubtaskFlatten: req.SubtaskFlatten,
		Count:          req.Count,
		Intensity:      req.Intensity,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSubtasksResp(out.Subtasks))
}
