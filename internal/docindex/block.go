package docindex

// PositionKind tags how a source format addresses location.
type PositionKind int

const (
	// PositionNone means the source carries no format-native position (raw text).
	PositionNone PositionKind = iota
	// PositionPage means the source is paged (PDF).
	PositionPage
	// PositionParagraph means the source is paragraph-structured (DOCX, text).
	PositionParagraph
)

// Position is the format-native location of a piece of document text.
// A document uses page positions or paragraph positions, never both;
// encoding that as a tagged value makes the exclusivity structural.
type Position struct {
	kind PositionKind
	n    int
}

// PageAt returns a paged position (1-based).
func PageAt(n int) Position {
	return Position{kind: PositionPage, n: n}
}

// ParagraphAt returns a paragraph position (1-based).
func ParagraphAt(n int) Position {
	return Position{kind: PositionParagraph, n: n}
}

// Kind reports how this position addresses the document.
func (p Position) Kind() PositionKind {
	return p.kind
}

// Page returns the page number when the position is paged.
func (p Position) Page() (int, bool) {
	if p.kind == PositionPage {
		return p.n, true
	}
	return 0, false
}

// Paragraph returns the paragraph number when the position is paragraph-based.
func (p Position) Paragraph() (int, bool) {
	if p.kind == PositionParagraph {
		return p.n, true
	}
	return 0, false
}

// Fragment is one loader-produced unit of raw document text, in document
// order, tagged with its format-native position. Fragments may span several
// physical lines; the indexer splits them.
type Fragment struct {
	Text     string
	Position Position
}

// Block is the smallest indexed unit of document text: one non-empty
// physical line with its assigned line number, source position, and
// section label. Immutable once the index is built.
type Block struct {
	Text       string
	LineNumber int
	Position   Position
	Section    Section
}

// DocumentIndex is the ordered, classified block sequence for one document,
// plus the concatenated text shown to the value extractor. Line numbers are
// strictly increasing across Blocks.
type DocumentIndex struct {
	Blocks   []Block
	FullText string
}
