package finalizer

import (
	"fmt"
	"io/fs"
)

// NotFoundError is returned when a path scheduled for removal does not
// exist. It means the template did not produce the files the answers expect.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot remove %s: not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// OccupiedError is returned when a link path is held by something that is
// not a symbolic link. The existing entry is left untouched.
type OccupiedError struct {
	Path string
	Mode fs.FileMode
}

func (e *OccupiedError) Error() string {
	kind := "file"
	if e.Mode.IsDir() {
		kind = "directory"
	}
	return fmt.Sprintf("cannot link %s: a %s already exists there", e.Path, kind)
}
