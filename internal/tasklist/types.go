package tasklist

import "time"

// User is the persisted record of one account's task tree. The whole tree
// is stored as a single JSON-encoded blob; there is no per-task
// persistence granularity.
type User struct {
	AuthorID  string
	Tasks     string // JSON-encoded []model.Task
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmptyTasks is the blob written when a user record is first provisioned.
const EmptyTasks = "[]"
