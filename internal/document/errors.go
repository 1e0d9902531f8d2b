package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFrontMatterMissing = errors.New("document: front matter block is required")
	ErrFrontMatterInvalid = errors.New("document: front matter is invalid")
)

// FrontMatterError captures why the front-matter header was rejected. Missing
// and malformed headers are both fatal; callers should produce no output
// artifact when they see this error.
type FrontMatterError struct {
	Reason string
	Err    error
}

func (e *FrontMatterError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	reason := strings.TrimSpace(e.Reason)
	if reason == "" {
		return ErrFrontMatterInvalid.Error()
	}
	return fmt.Sprintf("%s: %s", ErrFrontMatterInvalid.Error(), reason)
}

func (e *FrontMatterError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrFrontMatterInvalid
	}
	return e.Err
}
