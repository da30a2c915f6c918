package loader

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/preyasha/autofill/internal/docindex"
)

// MarkdownLoader handles Markdown files using goldmark. Each top-level
// block (heading, paragraph, list, ...) becomes one fragment; fragments
// are numbered as paragraphs in document order.
type MarkdownLoader struct{}

func (p *MarkdownLoader) Load(r io.Reader, filename string) ([]docindex.Fragment, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var fragments []docindex.Fragment
	paraNum := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		paraNum++
		var t string
		if h, ok := n.(*ast.Heading); ok {
			t = string(h.Text(src))
		} else {
			t = blockText(n, src)
		}
		if t == "" {
			continue
		}
		fragments = append(fragments, docindex.Fragment{
			Text:     t,
			Position: docindex.ParagraphAt(paraNum),
		})
	}
	return fragments, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
