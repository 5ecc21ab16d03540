package tasklist

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMalformedRecord = errors.New("stored task tree is not valid JSON")
)
