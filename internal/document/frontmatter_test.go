package document

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/cheatsheet.md")

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Layout != "default" {
		t.Fatalf("Layout mismatch, got %q", meta.Layout)
	}
	if meta.Title != "Gleam for Elixir users" {
		t.Fatalf("Title mismatch, got %q", meta.Title)
	}
	if meta.Raw["title"] != "Gleam for Elixir users" {
		t.Fatalf("Raw title missing: %#v", meta.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Comparing Gleam and Elixir") {
		t.Fatalf("markdown body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "layout:") {
		t.Fatalf("front matter delimiters leaked into body: %q", string(body))
	}
}

func TestParseFrontMatter_MissingBlock(t *testing.T) {
	data := readFixture(t, "testdata/no_frontmatter.md")

	_, _, err := ParseFrontMatter(data)
	if err == nil {
		t.Fatalf("expected error for source without front matter")
	}

	var fmErr *FrontMatterError
	if !errors.As(err, &fmErr) {
		t.Fatalf("expected FrontMatterError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrFrontMatterMissing) {
		t.Fatalf("expected ErrFrontMatterMissing, got %v", err)
	}
}

func TestParseFrontMatter_MissingTitle(t *testing.T) {
	data := readFixture(t, "testdata/missing_title.md")

	_, _, err := ParseFrontMatter(data)
	if err == nil {
		t.Fatalf("expected error for front matter without title")
	}

	var fmErr *FrontMatterError
	if !errors.As(err, &fmErr) {
		t.Fatalf("expected FrontMatterError, got %T: %v", err, err)
	}
	if !strings.Contains(fmErr.Reason, "title") {
		t.Fatalf("expected reason to mention the missing key, got %q", fmErr.Reason)
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
