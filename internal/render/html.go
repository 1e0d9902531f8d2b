// Package render converts a parsed document and its table of contents into an
// HTML artifact. Rendering is a pure transformation: the same document always
// produces byte-identical output.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/contentools/pagegen/internal/document"
	"github.com/contentools/pagegen/internal/toc"
)

// WarningCode classifies recoverable rendering conditions.
type WarningCode string

const (
	// WarnRaggedTableRow flags a table row whose cell count differs from the
	// header. The row still renders as-is.
	WarnRaggedTableRow WarningCode = "table_ragged_row"
)

// Warning records a recoverable condition surfaced during rendering.
// Warnings never abort the build; callers log them.
type Warning struct {
	Code    WarningCode
	Message string
}

// Config adjusts the shape of the rendered artifact.
type Config struct {
	// Fragment skips the HTML document shell and the TOC nav, emitting only
	// the rendered blocks.
	Fragment bool
	// Lang sets the html element lang attribute. Defaults to "en".
	Lang string
}

// Renderer emits HTML for the closed block set.
type Renderer struct {
	cfg Config
}

// New constructs a Renderer.
func New(cfg Config) *Renderer {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	return &Renderer{cfg: cfg}
}

// Render produces the page artifact for doc. Heading anchors are taken from
// entries, which must come from the same document so occurrence order lines
// up.
func (r *Renderer) Render(doc *document.Document, entries []toc.Entry) ([]byte, []Warning, error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("render: document is nil")
	}

	var buf bytes.Buffer
	var warnings []Warning

	if !r.cfg.Fragment {
		r.writeHead(&buf, doc)
		r.writeTOC(&buf, entries)
		buf.WriteString("<main>\n")
	}

	headingIdx := 0
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case document.Heading:
			anchor := ""
			if headingIdx < len(entries) {
				anchor = entries[headingIdx].AnchorID
			}
			headingIdx++
			r.writeHeading(&buf, b, anchor)
		case document.Paragraph:
			buf.WriteString("<p>")
			writeSpans(&buf, b.Spans)
			buf.WriteString("</p>\n")
		case document.List:
			r.writeList(&buf, b)
		case document.Table:
			warnings = append(warnings, r.writeTable(&buf, b)...)
		case document.CodeBlock:
			r.writeCodeBlock(&buf, b)
		}
	}

	if !r.cfg.Fragment {
		buf.WriteString("</main>\n</body>\n</html>\n")
	}

	return buf.Bytes(), warnings, nil
}

func (r *Renderer) writeHead(buf *bytes.Buffer, doc *document.Document) {
	fmt.Fprintf(buf, "<!DOCTYPE html>\n<html lang=%q>\n<head>\n", r.cfg.Lang)
	buf.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", html.EscapeString(doc.FrontMatter.Title))
	buf.WriteString("</head>\n")
	fmt.Fprintf(buf, "<body class=\"layout-%s\">\n", html.EscapeString(doc.FrontMatter.Layout))
}

func (r *Renderer) writeTOC(buf *bytes.Buffer, entries []toc.Entry) {
	if len(entries) == 0 {
		return
	}
	buf.WriteString("<nav class=\"toc\">\n<ul>\n")
	for _, entry := range entries {
		fmt.Fprintf(buf, "<li class=\"toc-level-%d\"><a href=\"#%s\">%s</a></li>\n",
			entry.Level, entry.AnchorID, html.EscapeString(entry.Text))
	}
	buf.WriteString("</ul>\n</nav>\n")
}

func (r *Renderer) writeHeading(buf *bytes.Buffer, b document.Heading, anchor string) {
	if anchor != "" {
		fmt.Fprintf(buf, "<h%d id=%q>", b.Level, anchor)
	} else {
		fmt.Fprintf(buf, "<h%d>", b.Level)
	}
	writeSpans(buf, b.Spans)
	fmt.Fprintf(buf, "</h%d>\n", b.Level)
}

func (r *Renderer) writeList(buf *bytes.Buffer, b document.List) {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}

	buf.WriteString("<" + tag)
	if b.Ordered && b.Start > 1 {
		buf.WriteString(` start="` + strconv.Itoa(b.Start) + `"`)
	}
	buf.WriteString(">\n")

	for _, item := range b.Items {
		buf.WriteString("<li>")
		writeSpans(buf, item)
		buf.WriteString("</li>\n")
	}

	buf.WriteString("</" + tag + ">\n")
}

// writeTable renders the first row as header cells. Rows whose cell count
// differs from the header render ragged and produce a warning.
func (r *Renderer) writeTable(buf *bytes.Buffer, b document.Table) []Warning {
	var warnings []Warning

	buf.WriteString("<table>\n<thead>\n<tr>\n")
	for _, cell := range b.Header {
		writeCell(buf, "th", cell)
	}
	buf.WriteString("</tr>\n</thead>\n<tbody>\n")

	for i, row := range b.Rows {
		if len(row) != len(b.Header) {
			warnings = append(warnings, Warning{
				Code: WarnRaggedTableRow,
				Message: fmt.Sprintf("table row %d has %d cells, header has %d",
					i+1, len(row), len(b.Header)),
			})
		}
		buf.WriteString("<tr>\n")
		for _, cell := range row {
			writeCell(buf, "td", cell)
		}
		buf.WriteString("</tr>\n")
	}

	buf.WriteString("</tbody>\n</table>\n")
	return warnings
}

func writeCell(buf *bytes.Buffer, tag string, cell document.Cell) {
	buf.WriteString("<" + tag)
	switch cell.Align {
	case document.AlignLeft:
		buf.WriteString(` align="left"`)
	case document.AlignCenter:
		buf.WriteString(` align="center"`)
	case document.AlignRight:
		buf.WriteString(` align="right"`)
	}
	buf.WriteString(">")
	writeSpans(buf, cell.Spans)
	buf.WriteString("</" + tag + ">\n")
}

// writeCodeBlock emits the fenced sample with its language tag passed through
// verbatim. Unrecognized tags are not an error; highlighters downstream treat
// them as plain text.
func (r *Renderer) writeCodeBlock(buf *bytes.Buffer, b document.CodeBlock) {
	if b.Language != "" {
		fmt.Fprintf(buf, "<pre><code class=\"language-%s\">", html.EscapeString(b.Language))
	} else {
		buf.WriteString("<pre><code>")
	}
	buf.WriteString(html.EscapeString(b.Code))
	buf.WriteString("</code></pre>\n")
}
