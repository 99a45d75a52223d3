// Package spreadsheet wraps excelize behind the row-of-cells shapes the
// calculation services consume and produce. Binary workbook details stay here.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an ordered set of named sheets, each a header row followed by
// data rows of string cells.
type Workbook struct {
	SheetOrder []string
	Sheets     map[string][][]string
}

// First returns the first sheet's name and rows. The first sheet carries the
// roster in every upload this service accepts.
func (w *Workbook) First() (string, [][]string) {
	if len(w.SheetOrder) == 0 {
		return "", nil
	}
	name := w.SheetOrder[0]
	return name, w.Sheets[name]
}

// Read parses a workbook from r into string rows, preserving sheet order.
func Read(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, errors.New("no sheet found in the Excel file")
	}

	wb := &Workbook{
		SheetOrder: sheetList,
		Sheets:     make(map[string][][]string, len(sheetList)),
	}

	for _, name := range sheetList {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read rows from sheet %q: %w", name, err)
		}
		wb.Sheets[name] = rows
	}

	return wb, nil
}

// Write builds an xlsx workbook with a single sheet from rows of arbitrary
// cell values. Columns listed in moneyCols get the #,##0 number format on
// every data row.
func Write(sheetName string, rows [][]any, moneyCols []int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheetName {
		f.SetSheetName(defaultSheet, sheetName)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("unable to write row %d: %w", i+1, err)
		}
	}

	if len(moneyCols) > 0 && len(rows) > 1 {
		numFmt := "#,##0"
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, fmt.Errorf("unable to create number style: %w", err)
		}
		for _, col := range moneyCols {
			top, err := excelize.CoordinatesToCellName(col+1, 2)
			if err != nil {
				return nil, fmt.Errorf("invalid cell coordinates: %w", err)
			}
			bottom, err := excelize.CoordinatesToCellName(col+1, len(rows))
			if err != nil {
				return nil, fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellStyle(sheetName, top, bottom, style); err != nil {
				return nil, fmt.Errorf("unable to apply number style: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// StringGrid converts string rows to the any-valued rows Write expects.
func StringGrid(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}

// IsSpreadsheetName reports whether the uploaded file name looks like a
// workbook this service can parse.
func IsSpreadsheetName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls")
}
