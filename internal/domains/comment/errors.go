package comment

import "errors"

var (
	ErrEmptyText    = errors.New("comment text must not be empty")
	ErrPostNotFound = errors.New("post not found")
)
