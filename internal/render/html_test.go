package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/contentools/pagegen/internal/document"
	"github.com/contentools/pagegen/internal/toc"
)

func renderBody(tb testing.TB, cfg Config, body string) ([]byte, []Warning) {
	tb.Helper()

	parser := document.NewParser()
	doc := &document.Document{
		FrontMatter: document.FrontMatter{Layout: "default", Title: "Cheatsheet"},
		Blocks:      parser.ParseBody([]byte(body)),
	}

	entries, err := toc.NewBuilder().Build(doc)
	if err != nil {
		tb.Fatalf("toc build: %v", err)
	}

	out, warnings, err := New(cfg).Render(doc, entries)
	if err != nil {
		tb.Fatalf("render: %v", err)
	}
	return out, warnings
}

func TestRenderer_HeadingAnchors(t *testing.T) {
	out, _ := renderBody(t, Config{Fragment: true}, "## Match operator\n\ntext\n")

	got := string(out)
	if !strings.Contains(got, `<h2 id="match-operator">Match operator</h2>`) {
		t.Fatalf("expected anchored heading, got %q", got)
	}
}

func TestRenderer_Table(t *testing.T) {
	body := "| Operator | Elixir | Gleam | Notes |\n| --- | --- | --- | --- |\n| Equal | `==` | `==` | same type |\n"
	out, warnings := renderBody(t, Config{Fragment: true}, body)

	got := string(out)
	if n := strings.Count(got, "<th>"); n != 4 {
		t.Fatalf("expected 4 header cells, got %d in %q", n, got)
	}
	if n := strings.Count(got, "<td>"); n != 4 {
		t.Fatalf("expected 4 data cells, got %d in %q", n, got)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for a well-formed table, got %#v", warnings)
	}
}

func TestRenderer_RaggedTable(t *testing.T) {
	doc := &document.Document{
		Blocks: []document.Block{
			document.Table{
				Header: []document.Cell{
					{Spans: []document.Span{document.Text{Value: "A"}}},
					{Spans: []document.Span{document.Text{Value: "B"}}},
				},
				Rows: [][]document.Cell{
					{{Spans: []document.Span{document.Text{Value: "only one"}}}},
				},
			},
		},
	}

	out, warnings, err := New(Config{Fragment: true}).Render(doc, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnRaggedTableRow {
		t.Fatalf("expected one ragged row warning, got %#v", warnings)
	}
	if !strings.Contains(string(out), "only one") {
		t.Fatalf("ragged row should still render, got %q", string(out))
	}
}

func TestRenderer_CodeBlock(t *testing.T) {
	out, _ := renderBody(t, Config{Fragment: true}, "```elixir\nsize = 50\n```\n")

	got := string(out)
	if !strings.Contains(got, `<pre><code class="language-elixir">size = 50`) {
		t.Fatalf("expected language-tagged code block, got %q", got)
	}
}

func TestRenderer_UnknownLanguagePassthrough(t *testing.T) {
	out, _ := renderBody(t, Config{Fragment: true}, "```vbscript9\nx\n```\n")

	if !strings.Contains(string(out), `class="language-vbscript9"`) {
		t.Fatalf("expected unvalidated language tag, got %q", string(out))
	}
}

func TestRenderer_CodeEscaping(t *testing.T) {
	out, _ := renderBody(t, Config{Fragment: true}, "```gleam\nlet x = a <> b\n```\n")

	got := string(out)
	if !strings.Contains(got, "a &lt;&gt; b") {
		t.Fatalf("expected escaped code content, got %q", got)
	}
	if strings.Contains(got, "a <> b") {
		t.Fatalf("raw markup leaked into code block: %q", got)
	}
}

func TestRenderer_PageShell(t *testing.T) {
	out, _ := renderBody(t, Config{}, "# Title A\n\n## Title B\n")

	got := string(out)
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Fatalf("expected full page shell, got %q", got)
	}
	if !strings.Contains(got, "<title>Cheatsheet</title>") {
		t.Fatalf("expected page title, got %q", got)
	}
	if !strings.Contains(got, `<nav class="toc">`) {
		t.Fatalf("expected TOC nav, got %q", got)
	}
	if !strings.Contains(got, `<a href="#title-b">Title B</a>`) {
		t.Fatalf("expected TOC link to heading anchor, got %q", got)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	body := "# One\n\nPara *emphasis* and `code`.\n\n- a\n- b\n"

	first, _ := renderBody(t, Config{}, body)
	second, _ := renderBody(t, Config{}, body)

	if !bytes.Equal(first, second) {
		t.Fatalf("rendering is not byte-identical across runs")
	}
}

func TestRenderer_InlineFormatting(t *testing.T) {
	out, _ := renderBody(t, Config{Fragment: true},
		"Use [Gleam](https://gleam.run \"the site\") with *style* and `let`.\n")

	got := string(out)
	if !strings.Contains(got, `<a href="https://gleam.run" title="the site">Gleam</a>`) {
		t.Fatalf("expected link markup, got %q", got)
	}
	if !strings.Contains(got, "<em>style</em>") {
		t.Fatalf("expected emphasis markup, got %q", got)
	}
	if !strings.Contains(got, "<code>let</code>") {
		t.Fatalf("expected code span markup, got %q", got)
	}
}
