package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dgallion1/linkgest/internal/runlog"
)

// CSVSource emits every cell of every row.
type CSVSource struct {
	// FieldSizeLimit caps a single field, in characters. Zero means
	// DefaultCSVFieldSizeLimit; a negative value disables the check.
	FieldSizeLimit int
}

func (s *CSVSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	limit := s.FieldSizeLimit
	if limit == 0 {
		limit = DefaultCSVFieldSizeLimit
	}

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		for _, cell := range record {
			if !utf8.ValidString(cell) {
				return fmt.Errorf("parse csv: line %d: invalid utf-8", line)
			}
			if limit > 0 && len(cell) > limit && utf8.RuneCountInString(cell) > limit {
				return fmt.Errorf("parse csv: line %d: field larger than field limit (%d)", line, limit)
			}
			emit(cell)
		}
	}
}
