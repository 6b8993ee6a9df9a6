package parser

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/dgallion1/linkgest/internal/runlog"
)

// TextSource emits the whole file as a single fragment. URLs cannot cross a
// newline, so matches stay line-bounded.
type TextSource struct{}

func (s *TextSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("read text: %s is not valid utf-8", path)
	}
	emit(string(data))
	return nil
}
