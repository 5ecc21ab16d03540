// Package tasktree holds the pure mutation functions over a user's task
// tree. Every function returns a new slice and leaves its input untouched;
// operations against a stale or unknown id return the tree unchanged
// rather than failing, since the UI only issues ids it currently displays.
package tasktree

import "tasktree/internal/model"

// NewTask constructs a top-level task with default flags.
func NewTask(text string) model.Task {
	return model.Task{
		ID:       NewID(),
		Text:     text,
		Subtasks: []model.Task{},
	}
}

// Add appends one new task with the given text to the end of the list.
func Add(tasks []model.Task, text string) []model.Task {
	out := clone(tasks)
	return append(out, NewTask(text))
}

// Toggle flips the completed flag on the task identified by (taskID,
// parentID). Siblings and ancestors are untouched; a parent's completed
// flag is never derived from its children.
func Toggle(tasks []model.Task, taskID, parentID string) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if parentID != "" {
			if t.ID == parentID {
				t.Subtasks = mapTasks(t.Subtasks, func(s model.Task) model.Task {
					if s.ID == taskID {
						s.Completed = !s.Completed
					}
					return s
				})
			}
			return t
		}
		if t.ID == taskID {
			t.Completed = !t.Completed
		}
		return t
	})
}

// Remove deletes a task. With a parentID it removes one subtask from that
// parent; without one it removes the whole top-level task, subtasks
// included.
func Remove(tasks []model.Task, taskID, parentID string) []model.Task {
	if parentID != "" {
		return mapTasks(tasks, func(t model.Task) model.Task {
			if t.ID == parentID {
				kept := make([]model.Task, 0, len(t.Subtasks))
				for _, s := range t.Subtasks {
					if s.ID != taskID {
						kept = append(kept, s)
					}
				}
				t.Subtasks = kept
			}
			return t
		})
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != taskID {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// EditText replaces the text of the identified task. Empty text is legal:
// the editing session may pass one through on save.
func EditText(tasks []model.Task, taskID, parentID, text string) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if parentID != "" {
			if t.ID == parentID {
				t.Subtasks = mapTasks(t.Subtasks, func(s model.Task) model.Task {
					if s.ID == taskID {
						s.Text = text
					}
					return s
				})
			}
			return t
		}
		if t.ID == taskID {
			t.Text = text
		}
		return t
	})
}

// ToggleCollapse flips the collapsed display hint. Top-level tasks only;
// subtasks have no independent collapse state.
func ToggleCollapse(tasks []model.Task, taskID string) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if t.ID == taskID {
			t.Collapsed = !t.Collapsed
		}
		return t
	})
}

// AppendSubtasks builds one subtask per text and appends the batch to the
// target top-level task, then truncates to MaxSubtasks. Excess entries are
// dropped silently, never an error.
func AppendSubtasks(tasks []model.Task, taskID string, texts []string) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if t.ID != taskID {
			return t
		}
		merged := append([]model.Task{}, t.Subtasks...)
		for _, text := range texts {
			merged = append(merged, model.Task{
				ID:       NewID(),
				Text:     text,
				Subtasks: []model.Task{},
			})
		}
		if len(merged) > model.MaxSubtasks {
			merged = merged[:model.MaxSubtasks]
		}
		t.Subtasks = merged
		return t
	})
}

// mapTasks applies fn to a deep copy of every top-level task.
func mapTasks(tasks []model.Task, fn func(model.Task) model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, fn(cloneTask(t)))
	}
	return out
}

func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, cloneTask(t))
	}
	return out
}

func cloneTask(t model.Task) model.Task {
	subs := make([]model.Task, len(t.Subtasks))
	copy(subs, t.Subtasks)
	t.Subtasks = subs
	return t
}
