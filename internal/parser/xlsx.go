package parser

import (
	"fmt"

	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/xuri/excelize/v2"
)

// XLSXSource emits the string cells of every sheet. Numeric, boolean, date,
// error and blank cells are skipped. Formula text is emitted as well, so
// =HYPERLINK("...") targets are found even without a cached value.
type XLSXSource struct{}

func (s *XLSXSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		if err := scanSheet(f, sheet, emit); err != nil {
			return err
		}
	}
	return nil
}

func scanSheet(f *excelize.File, sheet string, emit EmitFunc) error {
	rows, err := f.Rows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	rowNum := 0
	for rows.Next() {
		rowNum++
		cols, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("read sheet %q row %d: %w", sheet, rowNum, err)
		}
		for i, value := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
			if formula, err := f.GetCellFormula(sheet, cell); err == nil && formula != "" {
				emit("=" + formula)
			}
			if value == "" {
				continue
			}
			typ, err := f.GetCellType(sheet, cell)
			if err != nil {
				return fmt.Errorf("sheet %q cell %s: %w", sheet, cell, err)
			}
			if isStringCell(typ) {
				emit(value)
			}
		}
	}
	if err := rows.Error(); err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return nil
}

func isStringCell(typ excelize.CellType) bool {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}
