package sheet

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySheet  = errors.New("sheet has no data rows")
	ErrNoWorksheet = errors.New("workbook has no worksheets")
)

// InvalidHeaderError reports a roster whose leading columns are not
// NAMA and NIP, carrying the values actually found.
type InvalidHeaderError struct {
	Col0 string
	Col1 string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid roster header: expected NAMA, NIP but found %q, %q", e.Col0, e.Col1)
}
