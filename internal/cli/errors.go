package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type formatError struct {
	format  string
	allowed []string
}

func (e formatError) Error() string {
	return fmt.Sprintf("unknown format %q (want one of %v)", e.format, e.allowed)
}
