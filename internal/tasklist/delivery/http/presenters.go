package http

import "tasktree/internal/model"

// tasksResp is the read response: the tree verbatim plus the success flag.
type tasksResp struct {
	Success bool         `json:"success"`
	Tasks   []model.Task `json:"tasks"`
}

func newTasksResp(tasks []model.Task) tasksResp {
	return tasksResp{Success: true, Tasks: tasks}
}
