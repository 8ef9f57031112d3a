package post

import "errors"

// ErrNotFound is returned when no post exists under the given id.
var ErrNotFound = errors.New("post: post not found")
