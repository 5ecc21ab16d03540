package http

// subtasksResp is the generation response: the suggested subtask texts in
// the order the model emitted them.
type subtasksResp struct {
	Subtasks []string `json:"subtasks"`
}

func newSubtasksResp(subtasks []string) subtasksResp {
	if subtasks == nil {
		subtasks = []string{}
	}
	return subtasksResp{Subtasks: subtasks}
}

// errResp is the generation failure body. The generation endpoint predates
// the {success, message} envelope and its clients key on "error".
type errResp struct {
	Error string `json:"error"`
}
