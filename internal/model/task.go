package model

// MaxSubtasks is the hard cap on children per top-level task.
const MaxSubtasks = 5

// Task is a to-do item. The type is recursive, but in practice the tree
// is two levels deep: top-level tasks own subtasks, subtasks own nothing.
// JSON tags match the wire shape the web client stores and reads back.
type Task struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Subtasks  []Task `json:"subtasks"`
	Collapsed bool   `json:"collapsed"`
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
