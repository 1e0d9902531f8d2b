package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parser turns markdown source bytes into Documents. The parser is stateless
// so callers can reuse a single instance across builds without locking.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a parser with the pipe-table extension enabled. The
// goldmark engine is used for AST construction only; rendering is handled by
// the render package against the flattened block model.
func NewParser() *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Parse reads the front-matter header and flattens the markdown body into the
// closed block set. The returned Document is never mutated afterwards.
func (p *Parser) Parse(source []byte) (*Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	root := p.engine.Parser().Parse(text.NewReader(body))

	return &Document{
		FrontMatter: meta,
		Blocks:      flattenBlocks(root, body),
		Body:        body,
	}, nil
}

// ParseBody flattens markdown bytes without requiring a front-matter header.
// Used by tests and callers that already hold a bare body.
func (p *Parser) ParseBody(body []byte) []Block {
	root := p.engine.Parser().Parse(text.NewReader(body))
	return flattenBlocks(root, body)
}

func flattenBlocks(parent ast.Node, source []byte) []Block {
	var out []Block

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Heading:
			out = append(out, Heading{
				Level: node.Level,
				Text:  string(node.Text(source)),
				Spans: inlineSpans(node, source),
			})
		case *ast.Paragraph:
			out = append(out, Paragraph{Spans: inlineSpans(node, source)})
		case *ast.List:
			out = append(out, listBlock(node, source))
		case *east.Table:
			out = append(out, tableBlock(node, source))
		case *ast.FencedCodeBlock:
			out = append(out, CodeBlock{
				Language: string(node.Language(source)),
				Code:     blockText(node, source),
			})
		case *ast.CodeBlock:
			out = append(out, CodeBlock{Code: blockText(node, source)})
		case *ast.Blockquote:
			// Quotes are outside the supported subset; their inner blocks
			// are hoisted to the top level.
			out = append(out, flattenBlocks(node, source)...)
		default:
			if plain := strings.TrimSpace(string(child.Text(source))); plain != "" {
				out = append(out, Paragraph{Spans: []Span{Text{Value: plain}}})
			}
		}
	}

	return out
}

func inlineSpans(parent ast.Node, source []byte) []Span {
	var spans []Span

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			value := string(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				value += " "
			}
			spans = appendText(spans, value)
		case *ast.String:
			spans = appendText(spans, string(node.Value))
		case *ast.CodeSpan:
			spans = append(spans, Code{Value: string(node.Text(source))})
		case *ast.Emphasis:
			spans = append(spans, Emphasis{
				Strong:   node.Level >= 2,
				Children: inlineSpans(node, source),
			})
		case *ast.Link:
			spans = append(spans, Link{
				Destination: string(node.Destination),
				Title:       string(node.Title),
				Children:    inlineSpans(node, source),
			})
		case *ast.AutoLink:
			url := string(node.URL(source))
			spans = append(spans, Link{
				Destination: url,
				Children:    []Span{Text{Value: string(node.Label(source))}},
			})
		default:
			if plain := string(child.Text(source)); plain != "" {
				spans = appendText(spans, plain)
			}
		}
	}

	return spans
}

// appendText merges consecutive text runs so soft line breaks inside a
// paragraph do not fragment the span list.
func appendText(spans []Span, value string) []Span {
	if value == "" {
		return spans
	}
	if len(spans) > 0 {
		if last, ok := spans[len(spans)-1].(Text); ok {
			spans[len(spans)-1] = Text{Value: last.Value + value}
			return spans
		}
	}
	return append(spans, Text{Value: value})
}

func listBlock(node *ast.List, source []byte) List {
	list := List{
		Ordered: node.IsOrdered(),
		Start:   node.Start,
	}

	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		var spans []Span
		for part := item.FirstChild(); part != nil; part = part.NextSibling() {
			switch part.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				spans = append(spans, inlineSpans(part, source)...)
			default:
				// Nested structures collapse into plain text; the cheatsheet
				// subset only uses flat lists.
				if plain := strings.TrimSpace(string(part.Text(source))); plain != "" {
					spans = appendText(spans, " "+plain)
				}
			}
		}
		list.Items = append(list.Items, spans)
	}

	return list
}

func tableBlock(node *east.Table, source []byte) Table {
	var table Table

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []Cell
		for col := row.FirstChild(); col != nil; col = col.NextSibling() {
			cell, ok := col.(*east.TableCell)
			if !ok {
				continue
			}
			cells = append(cells, Cell{
				Spans: inlineSpans(cell, source),
				Align: cellAlignment(cell.Alignment),
			})
		}

		switch row.(type) {
		case *east.TableHeader:
			table.Header = cells
		case *east.TableRow:
			table.Rows = append(table.Rows, cells)
		}
	}

	return table
}

func cellAlignment(align east.Alignment) Alignment {
	switch align {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

func blockText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return sb.String()
}
