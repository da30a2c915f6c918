package locate

import (
	"strings"
	"unicode"

	"github.com/preyasha/autofill/internal/docindex"
)

// exactMatcher finds the first block containing the target verbatim.
type exactMatcher struct{}

func (exactMatcher) name() string { return "exact" }

func (exactMatcher) match(target string, idx *docindex.DocumentIndex) (int, bool) {
	for i, b := range idx.Blocks {
		if strings.Contains(b.Text, target) {
			return i, true
		}
	}
	return 0, false
}

// foldMatcher retries the substring search case-insensitively, catching
// extractor-introduced case drift.
type foldMatcher struct{}

func (foldMatcher) name() string { return "case_insensitive" }

func (foldMatcher) match(target string, idx *docindex.DocumentIndex) (int, bool) {
	lower := strings.ToLower(target)
	for i, b := range idx.Blocks {
		if strings.Contains(strings.ToLower(b.Text), lower) {
			return i, true
		}
	}
	return 0, false
}

// normalizedMatcher collapses whitespace and strips punctuation from both
// sides before searching, guarding against formatting drift.
type normalizedMatcher struct{}

func (normalizedMatcher) name() string { return "normalized" }

func (normalizedMatcher) match(target string, idx *docindex.DocumentIndex) (int, bool) {
	norm := normalize(target)
	if norm == "" {
		return 0, false
	}
	for i, b := range idx.Blocks {
		if strings.Contains(normalize(b.Text), norm) {
			return i, true
		}
	}
	return 0, false
}

// tokenMatcher is the last resort: it picks the block containing the most of
// the target's tokens, earliest block winning ties. At least one token must
// match.
type tokenMatcher struct{}

func (tokenMatcher) name() string { return "token_overlap" }

func (tokenMatcher) match(target string, idx *docindex.DocumentIndex) (int, bool) {
	tokens := tokenize(target)
	if len(tokens) == 0 {
		return 0, false
	}

	best, bestCount := 0, 0
	for i, b := range idx.Blocks {
		blockTokens := tokenSet(b.Text)
		count := 0
		for _, tok := range tokens {
			if blockTokens[tok] {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	if bestCount == 0 {
		return 0, false
	}
	return best, true
}

// normalize lowercases, collapses whitespace runs to single spaces, and
// drops punctuation and symbol runes.
func normalize(s string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			// dropped
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func tokenize(s string) []string {
	var tokens []string
	for _, f := range strings.Fields(s) {
		if tok := normalize(f); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenize(s) {
		set[tok] = true
	}
	return set
}
