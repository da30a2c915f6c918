// Package extract calls an LLM backend to infer the value of a named field
// from document text. The backend returns only the value; anchoring it in
// the document is the locate package's job, so both operate on identical
// text.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Extractor infers the value of a named field from document text.
// A nil value with a nil error means the field is absent from the document.
type Extractor interface {
	ExtractField(ctx context.Context, documentText, field string) (*string, error)
}

// UnavailableError indicates the extraction backend failed at the transport
// level (network, auth, timeout). Callers surface it as an upstream failure;
// the core does not retry.
type UnavailableError struct {
	Backend string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("extractor backend %s unavailable: %v", e.Backend, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// fieldResponse is the JSON shape the model is instructed to return.
type fieldResponse struct {
	Value any `json:"value"`
}

// DecodeValue parses a model response into the extracted value. Models
// sometimes wrap JSON in a code fence or return numbers/booleans for
// numeric fields; both are tolerated. A JSON null or empty string means
// the field was not found.
func DecodeValue(raw string) (*string, error) {
	text := stripCodeBlock(raw)

	var resp fieldResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("parse extraction json: %w (raw: %s)", err, truncate(text, 200))
	}

	switch v := resp.Value.(type) {
	case nil:
		return nil, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "null") {
			return nil, nil
		}
		return &v, nil
	case float64:
		s := strings.TrimSuffix(fmt.Sprintf("%v", v), ".0")
		return &s, nil
	default:
		s := fmt.Sprintf("%v", v)
		return &s, nil
	}
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
