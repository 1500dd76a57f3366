package mutate

import (
	"errors"
	"fmt"

	"tasktree-cli/internal/model"
)

// NotFoundError reports a path that no longer denotes a node, typically
// because a structural edit shifted sibling indices after the path was taken.
type NotFoundError struct {
	Kind string
	Path model.Path
}

func (e NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "task"
	}
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s not found: empty path", kind)
	}
	return fmt.Sprintf("%s not found: %s", kind, e.Path)
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func notFound(kind string, path model.Path) error {
	return NotFoundError{Kind: kind, Path: path.Clone()}
}
