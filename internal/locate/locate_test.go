package locate

import (
	"testing"

	"github.com/preyasha/autofill/internal/docindex"
)

func contactIndex(t *testing.T) *docindex.DocumentIndex {
	t.Helper()
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "Name: John Doe\nEmail: john@example.com", Position: docindex.PageAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return idx
}

func TestResolve_ExactSubstring(t *testing.T) {
	r := NewResolver(DefaultConfig())
	rec, strategy, err := r.Resolve("john@example.com", contactIndex(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "exact" {
		t.Errorf("expected exact strategy, got %q", strategy)
	}
	if rec.LineNumber == nil || *rec.LineNumber != 2 {
		t.Errorf("expected line 2, got %v", rec.LineNumber)
	}
	if rec.Section != "Contact Information" {
		t.Errorf("expected section %q, got %q", "Contact Information", rec.Section)
	}
	if rec.PageNumber == nil || *rec.PageNumber != 1 {
		t.Errorf("expected page 1, got %v", rec.PageNumber)
	}
	if rec.ParagraphNumber != nil {
		t.Errorf("expected null paragraph number, got %d", *rec.ParagraphNumber)
	}
}

func TestResolve_CaseDrift(t *testing.T) {
	r := NewResolver(DefaultConfig())
	rec, strategy, err := r.Resolve("John@Example.com", contactIndex(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "case_insensitive" {
		t.Errorf("expected case_insensitive strategy, got %q", strategy)
	}
	if rec.LineNumber == nil || *rec.LineNumber != 2 {
		t.Errorf("expected line 2, got %v", rec.LineNumber)
	}
}

func TestResolve_NormalizedWhitespaceDrift(t *testing.T) {
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "Total amount due: $1,234.56 (incl. tax)", Position: docindex.ParagraphAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	_, strategy, err := r.Resolve("$1,234.56  (incl.  tax)", idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "normalized" {
		t.Errorf("expected normalized strategy, got %q", strategy)
	}
}

func TestResolve_TokenOverlapFallback(t *testing.T) {
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "Agreement between parties.\nTerms and conditions apply.\nSigned by John Doe on 2024-01-01", Position: docindex.ParagraphAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	rec, strategy, err := r.Resolve("John Doe (signed)", idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "token_overlap" {
		t.Errorf("expected token_overlap strategy, got %q", strategy)
	}
	if rec.LineNumber == nil || *rec.LineNumber != 3 {
		t.Errorf("expected line 3, got %v", rec.LineNumber)
	}
}

func TestResolve_TokenOverlapTieGoesToEarliestBlock(t *testing.T) {
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "alpha beta noise\nmore filler here\nalpha beta again", Position: docindex.ParagraphAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	rec, _, err := r.Resolve("alpha beta gamma", idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.LineNumber == nil || *rec.LineNumber != 1 {
		t.Errorf("expected earliest block (line 1), got %v", rec.LineNumber)
	}
}

func TestResolve_Unlocatable(t *testing.T) {
	r := NewResolver(DefaultConfig())
	if _, _, err := r.Resolve("completely unrelated text", contactIndex(t)); err != ErrValueNotLocated {
		t.Errorf("expected ErrValueNotLocated, got %v", err)
	}
	if _, _, err := r.Resolve("   ", contactIndex(t)); err != ErrValueNotLocated {
		t.Errorf("blank target: expected ErrValueNotLocated, got %v", err)
	}
}

func TestResolve_ShortMatchWidensContext(t *testing.T) {
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "Contact Information\nEmail: john@example.com\nPhone: 123-456-7890", Position: docindex.PageAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	rec, _, err := r.Resolve("john@example.com", idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Contact Information\nEmail: john@example.com\nPhone: 123-456-7890"
	if rec.Context != want {
		t.Errorf("expected widened context %q, got %q", want, rec.Context)
	}
	// Position fields still point at the matched block itself.
	if rec.LineNumber == nil || *rec.LineNumber != 2 {
		t.Errorf("expected line 2, got %v", rec.LineNumber)
	}
}

func TestResolve_ShortMultiByteMatchWidensContext(t *testing.T) {
	// 14 runes but over 40 bytes; the context minimum counts characters,
	// so this block still widens.
	short := "請求金額：１２３４５６７８９円"
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "before\n" + short + "\nafter", Position: docindex.ParagraphAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	rec, _, err := r.Resolve(short, idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "before\n" + short + "\nafter"
	if rec.Context != want {
		t.Errorf("expected widened context %q, got %q", want, rec.Context)
	}
}

func TestResolve_LongMatchKeepsOwnContext(t *testing.T) {
	long := "This block of text is comfortably longer than the default minimum context length."
	idx, err := docindex.Build([]docindex.Fragment{
		{Text: "before\n" + long + "\nafter", Position: docindex.ParagraphAt(1)},
	}, docindex.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver(DefaultConfig())
	rec, _, err := r.Resolve("comfortably longer", idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Context != long {
		t.Errorf("expected matched block text only, got %q", rec.Context)
	}
}
