package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/fumiama/go-docx"
)

// DOCXSource emits the text of each body paragraph.
type DOCXSource struct{}

func (s *DOCXSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat docx: %w", err)
	}

	// go-docx wants a ReaderAt plus size.
	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return fmt.Errorf("parse docx: %w", err)
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := docxParagraphText(para); text != "" {
			emit(text)
		}
	}
	return nil
}

// docxParagraphText joins the text runs of a paragraph, including runs
// wrapped in hyperlinks.
func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&buf, c)
		case *docx.Hyperlink:
			writeRunText(&buf, &c.Run)
		}
	}
	return buf.String()
}

func writeRunText(buf *strings.Builder, run *docx.Run) {
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
}
