package parser

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/dgallion1/linkgest/internal/runlog"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource emits the plain text of each page. It tries the Go library
// first, then falls back to pdftotext if enabled and available.
type PDFSource struct {
	FallbackPdftotext bool
}

func (s *PDFSource) Fragments(path string, sink runlog.Sink, emit EmitFunc) error {
	pages, err := extractPDFPages(path)
	if err != nil && s.FallbackPdftotext {
		sink.Emit(fmt.Sprintf("pdf reader failed, trying pdftotext: %v", err))
		pages, err = extractPdftotext(path)
	}
	if err != nil {
		return fmt.Errorf("extract pdf text: %w", err)
	}
	for _, page := range pages {
		if strings.TrimSpace(page) != "" {
			emit(page)
		}
	}
	return nil
}

func extractPDFPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return strings.Split(string(out), "\f"), nil
}
