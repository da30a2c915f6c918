package extract

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a precise document extraction assistant. Always return valid JSON."

// BuildFieldPrompt creates the extraction prompt for one field. The model is
// asked for the value only; location is resolved deterministically against
// the same document text afterwards.
func BuildFieldPrompt(documentText, field string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extract the value for the field %q from the following document text.\n\n", field)
	sb.WriteString("Document Text:\n")
	sb.WriteString(documentText)
	sb.WriteString("\n\nInstructions:\n")
	fmt.Fprintf(&sb, "1. Find the value associated with the field %q in the document.\n", field)
	sb.WriteString("2. The field might appear in various formats like:\n")
	fmt.Fprintf(&sb, "   - %q followed by \":\", \"=\" or \"-\" and the value\n", field)
	sb.WriteString("   - Or as a labeled field in a form\n")
	sb.WriteString("3. Extract the complete value accurately, exactly as it appears in the document.\n")
	sb.WriteString("4. Do not paraphrase, reformat, or summarize the value.\n\n")
	sb.WriteString(`Return your response as a valid JSON object with this exact structure:
{"value": "the extracted value, or null if the field is not found"}

Return ONLY valid JSON, no additional text or explanation.`)
	return sb.String()
}
