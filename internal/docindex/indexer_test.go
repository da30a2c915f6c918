package docindex

import (
	"reflect"
	"testing"
)

func TestBuild_LineNumbersStrictlyIncreasing(t *testing.T) {
	fragments := []Fragment{
		{Text: "Line one\nLine two", Position: PageAt(1)},
		{Text: "Line three", Position: PageAt(2)},
		{Text: "Line four\n\nLine five", Position: PageAt(3)},
	}

	idx, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx.Blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d", len(idx.Blocks))
	}
	for i, b := range idx.Blocks {
		if b.LineNumber != i+1 {
			t.Errorf("block %d: expected line %d, got %d", i, i+1, b.LineNumber)
		}
	}
}

func TestBuild_BlankLinesDoNotConsumeNumbers(t *testing.T) {
	fragments := []Fragment{
		{Text: "First\n\n   \nSecond", Position: ParagraphAt(1)},
	}

	idx, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(idx.Blocks))
	}
	if idx.Blocks[1].LineNumber != 2 {
		t.Errorf("expected blank lines to be skipped, got line %d", idx.Blocks[1].LineNumber)
	}
}

func TestBuild_PagedDocumentHasOnlyPageNumbers(t *testing.T) {
	fragments := []Fragment{
		{Text: "Page one text", Position: PageAt(1)},
		{Text: "Page two text", Position: PageAt(2)},
	}

	idx, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range idx.Blocks {
		if _, ok := b.Position.Page(); !ok {
			t.Errorf("block %d: expected page position", i)
		}
		if _, ok := b.Position.Paragraph(); ok {
			t.Errorf("block %d: paged block must not have a paragraph number", i)
		}
	}
}

func TestBuild_ParagraphDocumentHasOnlyParagraphNumbers(t *testing.T) {
	fragments := []Fragment{
		{Text: "Para one", Position: ParagraphAt(1)},
		{Text: "Para three", Position: ParagraphAt(3)}, // empty paragraph 2 skipped upstream
	}

	idx, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range idx.Blocks {
		if _, ok := b.Position.Paragraph(); !ok {
			t.Errorf("block %d: expected paragraph position", i)
		}
		if _, ok := b.Position.Page(); ok {
			t.Errorf("block %d: paragraph block must not have a page number", i)
		}
	}
	if n, _ := idx.Blocks[1].Position.Paragraph(); n != 3 {
		t.Errorf("expected loader-assigned paragraph 3 carried through, got %d", n)
	}
}

func TestBuild_EmptyDocument(t *testing.T) {
	cases := [][]Fragment{
		nil,
		{},
		{{Text: ""}, {Text: "   \n\t\n"}},
	}
	for i, fragments := range cases {
		if _, err := Build(fragments, DefaultConfig()); err != ErrEmptyDocument {
			t.Errorf("case %d: expected ErrEmptyDocument, got %v", i, err)
		}
	}
}

func TestBuild_FullTextMatchesBlockJoin(t *testing.T) {
	fragments := []Fragment{
		{Text: "Name: John Doe", Position: PageAt(1)},
		{Text: "Email: john@example.com", Position: PageAt(1)},
	}

	idx, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Name: John Doe\nEmail: john@example.com"
	if idx.FullText != want {
		t.Errorf("expected full text %q, got %q", want, idx.FullText)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	fragments := []Fragment{
		{Text: "ACME Corp\nInvoice #42", Position: PageAt(1)},
		{Text: "Total: $100\nSigned: J. Doe", Position: PageAt(2)},
	}

	first, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(fragments, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical indexes from identical input:\n%+v\n%+v", first, second)
	}
}

func TestBuild_RawTextHasNoFormatPosition(t *testing.T) {
	idx, err := Build([]Fragment{{Text: "just some text"}}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := idx.Blocks[0]
	if _, ok := b.Position.Page(); ok {
		t.Error("raw text block must not have a page number")
	}
	if _, ok := b.Position.Paragraph(); ok {
		t.Error("raw text block must not have a paragraph number")
	}
	if b.LineNumber != 1 {
		t.Errorf("expected line 1, got %d", b.LineNumber)
	}
}
