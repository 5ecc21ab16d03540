package http

import (
	"github.com/gin-gonic/gin"

	"tasktree/pkg/response"
)

// Get godoc
// @Summary     Read a user's task tree
// @Description Returns the full ordered task tree for the given author.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       authorId query string true "Author ID"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Missing authorId"
// @Failure     404 {object} response.Resp "Unknown user"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	authorID := c.Query("authorId")
	if authorID == "" {
		response.BadRequest(c, "authorId is required")
		return
	}

	tasks, err := h.uc.Load(ctx, authorID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTasksResp(tasks))
}

// Save godoc
// @Summary     Replace a user's task tree
// @Description Persists the entire tree as the new value of record for
// @Description the author. The record must already exist.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Author ID and full task tree"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Malformed body"
// @Failure     404 {object} response.Resp "Unknown user"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.uc.Save(ctx, req.AuthorID, req.tasks); err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		h.mapError(c, err)
		return
	}

	response.Success(c, "Tasks updated successfully")
}
