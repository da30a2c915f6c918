package loader

import (
	"testing"
)

func TestPageFragments(t *testing.T) {
	fragments := pageFragments("first page\fsecond page\fthird page")
	if len(fragments) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(fragments))
	}
	for i, frag := range fragments {
		page, ok := frag.Position.Page()
		if !ok {
			t.Fatalf("fragment %d: expected a page position", i)
		}
		if page != i+1 {
			t.Errorf("fragment %d: expected page %d, got %d", i, i+1, page)
		}
	}
}

func TestPageFragments_UnreadablePageKeepsNumbering(t *testing.T) {
	// Page 2 yielded no text; page 3 must still be numbered 3.
	fragments := pageFragments("first page\f\fthird page")
	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
	if page, _ := fragments[0].Position.Page(); page != 1 {
		t.Errorf("expected page 1, got %d", page)
	}
	if page, _ := fragments[1].Position.Page(); page != 3 {
		t.Errorf("expected page 3, got %d", page)
	}
	if fragments[1].Text != "third page" {
		t.Errorf("expected third page text, got %q", fragments[1].Text)
	}
}

func TestPageFragments_Empty(t *testing.T) {
	if fragments := pageFragments(""); len(fragments) != 0 {
		t.Errorf("expected no fragments, got %d", len(fragments))
	}
}
