package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyText    = errors.New("post text must not be empty")
	ErrNotOwner     = errors.New("only the author can edit this post")
)
