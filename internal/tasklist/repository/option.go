package repository

// CreateUserOptions holds parameters for inserting a new User record.
type CreateUserOptions struct {
	AuthorID string
	Tasks    string // JSON-encoded task tree
}

// UpdateTasksOptions holds parameters for replacing a user's task blob.
type UpdateTasksOptions struct {
	AuthorID string
	Tasks    string // JSON-encoded task tree
}
