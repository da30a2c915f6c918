package docindex

import (
	"errors"
	"strings"
)

// ErrEmptyDocument is returned when a document yields no usable text.
var ErrEmptyDocument = errors.New("document contains no usable text")

// Config controls indexing heuristics. The values are defaults, not
// contracts; deployments tune them through the environment.
type Config struct {
	HeaderLines   int // lines from the top classified as Header
	SignatureTail int // lines from the bottom where signature triggers apply
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HeaderLines:   3,
		SignatureTail: 5,
	}
}

func (c Config) withDefaults() Config {
	if c.HeaderLines <= 0 {
		c.HeaderLines = 3
	}
	if c.SignatureTail <= 0 {
		c.SignatureTail = 5
	}
	return c
}

// Build turns an ordered fragment sequence into a DocumentIndex.
//
// Each fragment is split into physical lines; blank lines are dropped and do
// not consume a line number (paragraph boundaries survive in the positions
// the loader assigned, which may skip numbers). Line numbers start at 1 and
// increase strictly across the whole document regardless of source format.
// FullText is the newline-join of all block texts, exactly the text the
// value extractor is shown, so extraction and resolution operate on the
// same input.
func Build(fragments []Fragment, cfg Config) (*DocumentIndex, error) {
	cfg = cfg.withDefaults()

	var blocks []Block
	line := 0
	for _, frag := range fragments {
		for _, raw := range strings.Split(frag.Text, "\n") {
			text := strings.TrimSpace(raw)
			if text == "" {
				continue
			}
			line++
			blocks = append(blocks, Block{
				Text:       text,
				LineNumber: line,
				Position:   frag.Position,
			})
		}
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}

	// Section labels need the final line count, so classification is a
	// second pass, threading the prior label through in document order.
	classifier := NewClassifier(cfg)
	prior := SectionBody
	texts := make([]string, len(blocks))
	for i := range blocks {
		blocks[i].Section = classifier.Classify(blocks[i].Text, blocks[i].LineNumber, line, prior)
		prior = blocks[i].Section
		texts[i] = blocks[i].Text
	}

	return &DocumentIndex{
		Blocks:   blocks,
		FullText: strings.Join(texts, "\n"),
	}, nil
}
