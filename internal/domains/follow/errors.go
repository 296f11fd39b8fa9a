package follow

import "errors"

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this author")
	ErrAuthorNotFound   = errors.New("author not found")
)
