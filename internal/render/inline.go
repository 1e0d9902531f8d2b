package render

import (
	"bytes"
	"html"

	"github.com/contentools/pagegen/internal/document"
)

// writeSpans renders an inline span list, switching exhaustively over the
// closed span set.
func writeSpans(buf *bytes.Buffer, spans []document.Span) {
	for _, span := range spans {
		switch s := span.(type) {
		case document.Text:
			buf.WriteString(html.EscapeString(s.Value))
		case document.Code:
			buf.WriteString("<code>")
			buf.WriteString(html.EscapeString(s.Value))
			buf.WriteString("</code>")
		case document.Emphasis:
			tag := "em"
			if s.Strong {
				tag = "strong"
			}
			buf.WriteString("<" + tag + ">")
			writeSpans(buf, s.Children)
			buf.WriteString("</" + tag + ">")
		case document.Link:
			buf.WriteString(`<a href="` + html.EscapeString(s.Destination) + `"`)
			if s.Title != "" {
				buf.WriteString(` title="` + html.EscapeString(s.Title) + `"`)
			}
			buf.WriteString(">")
			writeSpans(buf, s.Children)
			buf.WriteString("</a>")
		}
	}
}
