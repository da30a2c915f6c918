package docindex

import "strings"

// Section is a semantic region label attached to a block.
type Section string

const (
	SectionBody      Section = "Body"
	SectionHeader    Section = "Header"
	SectionContact   Section = "Contact Information"
	SectionSignature Section = "Signature"
)

// sectionRule maps trigger tokens to a label. A trigger matches
// case-insensitively as the whole line or as its leading token.
type sectionRule struct {
	label    Section
	triggers []string
	tailOnly bool // only applies within the signature tail window
}

// sectionRules are evaluated in order; extend by appending a rule.
var sectionRules = []sectionRule{
	{label: SectionContact, triggers: []string{"email", "phone", "address", "contact"}},
	{label: SectionSignature, triggers: []string{"signature", "signed", "date:"}, tailOnly: true},
}

// Classifier assigns section labels using keyword and position heuristics.
// It is stateless: all context arrives through the arguments, so the same
// inputs always yield the same label.
type Classifier struct {
	cfg Config
}

func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.withDefaults()}
}

// Classify labels one block. line is the block's 1-based line number,
// totalLines the document's last line number, and prior the label of the
// immediately preceding block (SectionBody for the first block).
//
// Keyword rules win over the positional header rule, so a contact line
// inside the header window is still Contact Information. Keyword labels
// carry forward to following blocks until another rule fires; the
// positional Header label does not, or the header window would be
// unbounded.
func (c *Classifier) Classify(text string, line, totalLines int, prior Section) Section {
	if label, ok := c.keywordLabel(text, line, totalLines); ok {
		return label
	}
	if line <= c.cfg.HeaderLines {
		return SectionHeader
	}
	if prior != SectionBody && prior != SectionHeader && prior != "" {
		return prior
	}
	return SectionBody
}

func (c *Classifier) keywordLabel(text string, line, totalLines int) (Section, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	leading := leadingToken(lower)
	for _, rule := range sectionRules {
		if rule.tailOnly && totalLines-line >= c.cfg.SignatureTail {
			continue
		}
		for _, trig := range rule.triggers {
			if lower == trig || leading == trig || strings.TrimRight(leading, ":,;.") == trig {
				return rule.label, true
			}
		}
	}
	return "", false
}

func leadingToken(lower string) string {
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
