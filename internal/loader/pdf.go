package loader

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/preyasha/autofill/internal/docindex"
)

// PDFLoader handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available. Each page becomes one
// fragment carrying its page position.
type PDFLoader struct {
	FallbackPdftotext bool
}

func (p *PDFLoader) Load(r io.Reader, filename string) ([]docindex.Fragment, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "autofill-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return pageFragments(text), nil
}

// pageFragments splits form-feed separated page text into fragments. The
// split index is the real page number: extraction emits one slot per page,
// so a blank or unreadable page leaves a gap without renumbering the rest.
func pageFragments(text string) []docindex.Fragment {
	var fragments []docindex.Fragment
	for i, page := range strings.Split(text, "\f") {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		fragments = append(fragments, docindex.Fragment{
			Text:     page,
			Position: docindex.PageAt(i + 1),
		})
	}
	return fragments
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// One slot per page, empty for pages that fail to extract, so the
	// form-feed join keeps later pages at their real numbers (pdftotext
	// emits a separator per page the same way).
	pages := make([]string, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i-1] = text
	}
	return strings.Join(pages, "\f"), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
