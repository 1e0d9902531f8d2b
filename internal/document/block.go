package document

// Block is one structural unit of the document body. The set of
// implementations is closed; renderers switch over the concrete types.
type Block interface {
	blockNode()
}

// Span is one inline unit within a block. Like Block, the set of
// implementations is closed.
type Span interface {
	spanNode()
}

// Heading is a section title. Text carries the flattened plain text used for
// anchor derivation; Spans preserve inline formatting for rendering.
type Heading struct {
	Level int
	Text  string
	Spans []Span
}

// Paragraph is a run of inline-formatted text.
type Paragraph struct {
	Spans []Span
}

// List is an ordered or unordered list. Items hold the inline spans of each
// list item in source order.
type List struct {
	Ordered bool
	Start   int
	Items   [][]Span
}

// Alignment describes the declared column alignment of a table cell.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Cell is a single table cell.
type Cell struct {
	Spans []Span
	Align Alignment
}

// Table is a pipe table. The first source row becomes Header; remaining rows
// are kept as-is, including rows whose cell count differs from the header.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// CodeBlock is a fenced code sample. Language carries the fence info string
// verbatim; it is never validated against a known set. Code preserves the
// literal content including whitespace.
type CodeBlock struct {
	Language string
	Code     string
}

func (Heading) blockNode()   {}
func (Paragraph) blockNode() {}
func (List) blockNode()      {}
func (Table) blockNode()     {}
func (CodeBlock) blockNode() {}

// Text is a literal text run.
type Text struct {
	Value string
}

// Emphasis wraps child spans in emphasis or strong emphasis.
type Emphasis struct {
	Strong   bool
	Children []Span
}

// Code is an inline code span.
type Code struct {
	Value string
}

// Link is a hyperlink around child spans.
type Link struct {
	Destination string
	Title       string
	Children    []Span
}

func (Text) spanNode()     {}
func (Emphasis) spanNode() {}
func (Code) spanNode()     {}
func (Link) spanNode()     {}

// Document is the parsed source: front-matter plus body blocks. Documents are
// immutable once parsed; every build renders from the same value.
type Document struct {
	FrontMatter FrontMatter
	Blocks      []Block
	Body        []byte
}

// Headings returns the document's heading blocks in source order.
func (d *Document) Headings() []Heading {
	var out []Heading
	for _, block := range d.Blocks {
		if heading, ok := block.(Heading); ok {
			out = append(out, heading)
		}
	}
	return out
}
