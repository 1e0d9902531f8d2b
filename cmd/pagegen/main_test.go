package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.md")
	output := filepath.Join(dir, "page.html")

	source := "---\nlayout: default\ntitle: CLI run\n---\n\n# Hello\n\nBody text.\n"
	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	err := run([]string{"--input", input, "--output", output, "--log-level", "error"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	artifact, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.Contains(string(artifact), "<title>CLI run</title>") {
		t.Fatalf("artifact missing title: %q", string(artifact))
	}
}

func TestRun_MissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.md")

	err := run([]string{"--input", missing, "--log-level", "error"})
	if err == nil {
		t.Fatalf("expected error for missing input path")
	}
}

func TestRun_WatchRequiresInput(t *testing.T) {
	err := run([]string{"--watch", "--log-level", "error"})
	if err == nil || !strings.Contains(err.Error(), "--watch requires --input") {
		t.Fatalf("expected watch flag validation error, got %v", err)
	}
}
