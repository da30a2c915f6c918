// Package locate anchors an extracted field value in a document index.
// Matching is best-effort: an ordered cascade of strategies is tried and the
// first to find a block wins. The caller treats a miss as degraded metadata,
// not a failed extraction.
package locate

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/preyasha/autofill/internal/docindex"
)

// ErrValueNotLocated is returned when no strategy can anchor the value.
var ErrValueNotLocated = errors.New("value could not be anchored in the document")

// Record is the positional answer for a resolved value. Position fields not
// applicable to the source format serialize as null, never omitted.
type Record struct {
	PageNumber      *int   `json:"page_number"`
	LineNumber      *int   `json:"line_number"`
	ParagraphNumber *int   `json:"paragraph_number"`
	Context         string `json:"context"`
	Section         string `json:"section"`
}

// Config controls resolution behavior.
type Config struct {
	// MinContextChars widens the context window with neighboring blocks
	// when the matched block's own text is shorter than this.
	MinContextChars int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MinContextChars: 40}
}

// matcher is one strategy in the resolution cascade. It returns the index of
// the earliest matching block in document order.
type matcher interface {
	name() string
	match(target string, idx *docindex.DocumentIndex) (int, bool)
}

// Resolver finds the block a target value came from.
type Resolver struct {
	cfg      Config
	matchers []matcher
}

// NewResolver builds a resolver with the standard cascade: exact substring,
// case-insensitive substring, normalized substring, then token overlap.
func NewResolver(cfg Config) *Resolver {
	if cfg.MinContextChars <= 0 {
		cfg.MinContextChars = 40
	}
	return &Resolver{
		cfg: cfg,
		matchers: []matcher{
			exactMatcher{},
			foldMatcher{},
			normalizedMatcher{},
			tokenMatcher{},
		},
	}
}

// Resolve returns the location record for target within idx, or
// ErrValueNotLocated when no strategy matches.
func (r *Resolver) Resolve(target string, idx *docindex.DocumentIndex) (Record, string, error) {
	target = strings.TrimSpace(target)
	if target == "" || idx == nil || len(idx.Blocks) == 0 {
		return Record{}, "", ErrValueNotLocated
	}
	for _, m := range r.matchers {
		if i, ok := m.match(target, idx); ok {
			return r.record(idx, i), m.name(), nil
		}
	}
	return Record{}, "", ErrValueNotLocated
}

func (r *Resolver) record(idx *docindex.DocumentIndex, i int) Record {
	b := idx.Blocks[i]

	line := b.LineNumber
	rec := Record{
		LineNumber: &line,
		Context:    b.Text,
		Section:    string(b.Section),
	}
	if n, ok := b.Position.Page(); ok {
		rec.PageNumber = &n
	}
	if n, ok := b.Position.Paragraph(); ok {
		rec.ParagraphNumber = &n
	}

	// Short matches get the neighboring blocks as context; position fields
	// still report the matched block itself. Counted in runes, not bytes.
	if utf8.RuneCountInString(b.Text) < r.cfg.MinContextChars {
		var parts []string
		if i > 0 {
			parts = append(parts, idx.Blocks[i-1].Text)
		}
		parts = append(parts, b.Text)
		if i+1 < len(idx.Blocks) {
			parts = append(parts, idx.Blocks[i+1].Text)
		}
		rec.Context = strings.Join(parts, "\n")
	}
	return rec
}
