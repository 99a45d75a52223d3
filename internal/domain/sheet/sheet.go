// Package sheet models an uploaded attendance roster as a header row plus
// parallel-indexed data rows, located by header name rather than position.
package sheet

import (
	"regexp"
	"strings"
)

// Sheet is one worksheet: Rows[0] is the header row, the rest are data rows.
type Sheet struct {
	Name string
	Rows [][]string
}

// Headers returns the header row, or nil for an empty sheet.
func (s Sheet) Headers() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns every row after the header.
func (s Sheet) DataRows() [][]string {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}

// Empty reports whether the sheet has no data rows.
func (s Sheet) Empty() bool {
	return len(s.Rows) < 2
}

// ColumnIndex locates a column by exact header name, -1 when absent.
func (s Sheet) ColumnIndex(name string) int {
	for i, h := range s.Headers() {
		if h == name {
			return i
		}
	}
	return -1
}

// ColumnIndexFold locates a column by case-insensitive trimmed header name.
func (s Sheet) ColumnIndexFold(name string) int {
	for i, h := range s.Headers() {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// dayColumnRe matches day-of-month headers: "1".."31", optionally zero padded.
var dayColumnRe = regexp.MustCompile(`^\d{1,2}$`)

// DateColumns returns the indices of day-of-month columns in header order.
func (s Sheet) DateColumns() []int {
	var cols []int
	for i, h := range s.Headers() {
		if dayColumnRe.MatchString(h) {
			cols = append(cols, i)
		}
	}
	return cols
}

// Cell returns the trimmed cell at idx, or "" when the row is shorter.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// CleanNIP strips the quote artifact spreadsheet text-encoding leaves on
// employee numbers.
func CleanNIP(nip string) string {
	return strings.TrimSpace(strings.ReplaceAll(nip, "'", ""))
}

// IsWFO reports whether a day cell marks a work-from-office day.
func IsWFO(cell string) bool {
	return strings.ToUpper(strings.TrimSpace(cell)) == "WFO"
}

// ValidateRosterHeader enforces the fixed leading columns of the
// meal-allowance roster: NAMA at position 0 and NIP at position 1.
func ValidateRosterHeader(headers []string) error {
	var col0, col1 string
	if len(headers) > 0 {
		col0 = headers[0]
	}
	if len(headers) > 1 {
		col1 = headers[1]
	}
	if col0 != "NAMA" || col1 != "NIP" {
		return &InvalidHeaderError{Col0: col0, Col1: col1}
	}
	return nil
}
