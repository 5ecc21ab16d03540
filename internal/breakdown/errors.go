package breakdown

import "errors"

var (
	ErrInvalidInput  = errors.New("task and a count between 1 and 5 are required")
	ErrMissingAPIKey = errors.New("generation backend credential not configured")
	ErrUpstream      = errors.New("generation backend failed")
)
