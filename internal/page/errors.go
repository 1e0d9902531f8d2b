package page

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInputNotFound = errors.New("page: input not found")
	ErrInputRequired = errors.New("page: input source is required")
)

// InputNotFoundError captures a missing input path. Fatal; the build produces
// no artifact.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	if e == nil {
		return ErrInputNotFound.Error()
	}
	path := strings.TrimSpace(e.Path)
	if path != "" {
		return fmt.Sprintf("%s: path=%s", ErrInputNotFound.Error(), path)
	}
	return ErrInputNotFound.Error()
}

func (e *InputNotFoundError) Unwrap() error {
	return ErrInputNotFound
}
