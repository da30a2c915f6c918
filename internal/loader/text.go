package loader

import (
	"bufio"
	"io"
	"strings"

	"github.com/preyasha/autofill/internal/docindex"
)

// TextLoader handles plain text files. Blank-line-delimited paragraphs
// become fragments with paragraph positions.
type TextLoader struct{}

func (p *TextLoader) Load(r io.Reader, filename string) ([]docindex.Fragment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var fragments []docindex.Fragment
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			fragments = append(fragments, docindex.Fragment{
				Text:     current.String(),
				Position: docindex.ParagraphAt(len(fragments) + 1),
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fragments, nil
}
