// Package toc derives the table of contents for a parsed document. Anchor ids
// come from slugified heading text and are unique within a document.
package toc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"

	"github.com/contentools/pagegen/internal/document"
)

var ErrDuplicateAnchor = errors.New("toc: duplicate anchor id")

// DuplicateAnchorError reports an anchor collision when disambiguation is
// disabled. With disambiguation on (the default) collisions get a numeric
// suffix instead and this error is unreachable.
type DuplicateAnchorError struct {
	AnchorID string
	Heading  string
}

func (e *DuplicateAnchorError) Error() string {
	if e == nil {
		return ErrDuplicateAnchor.Error()
	}
	return fmt.Sprintf("%s: id=%s heading=%q", ErrDuplicateAnchor.Error(), e.AnchorID, e.Heading)
}

func (e *DuplicateAnchorError) Unwrap() error {
	return ErrDuplicateAnchor
}

// Entry is one table-of-contents row, in document order.
type Entry struct {
	AnchorID string
	Text     string
	Level    int
}

// Builder turns heading blocks into TOC entries.
type Builder struct {
	disambiguate bool
	normalizer   slug.Normalizer
}

// Option adjusts Builder behaviour.
type Option func(*Builder)

// WithoutDisambiguation makes anchor collisions fail with
// DuplicateAnchorError instead of appending a numeric suffix.
func WithoutDisambiguation() Option {
	return func(b *Builder) {
		b.disambiguate = false
	}
}

// NewBuilder constructs a Builder with disambiguation enabled.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		disambiguate: true,
		normalizer:   slug.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces one entry per heading, preserving document order. Anchor ids
// are unique across the returned slice.
func (b *Builder) Build(doc *document.Document) ([]Entry, error) {
	if doc == nil {
		return nil, nil
	}

	headings := doc.Headings()
	entries := make([]Entry, 0, len(headings))
	seen := make(map[string]struct{}, len(headings))

	for _, heading := range headings {
		id := b.anchorID(heading.Text)
		if _, taken := seen[id]; taken {
			if !b.disambiguate {
				return nil, &DuplicateAnchorError{AnchorID: id, Heading: heading.Text}
			}
			id = nextFreeAnchor(id, seen)
		}
		seen[id] = struct{}{}
		entries = append(entries, Entry{
			AnchorID: id,
			Text:     heading.Text,
			Level:    heading.Level,
		})
	}

	return entries, nil
}

// anchorID lower-cases the heading, collapses whitespace runs into single
// hyphens, and strips everything outside letters, digits, and hyphens.
func (b *Builder) anchorID(text string) string {
	if normalized, err := b.normalizer.Normalize(text); err == nil && normalized != "" {
		return normalized
	}
	if fallback := slugify(text); fallback != "" {
		return fallback
	}
	return "section"
}

func nextFreeAnchor(id string, seen map[string]struct{}) string {
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if _, taken := seen[candidate]; !taken {
			return candidate
		}
	}
}

func slugify(text string) string {
	var sb strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		}
	}

	return sb.String()
}
