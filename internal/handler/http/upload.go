package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/spreadsheet"
)

// uploads larger than this are rejected before parsing
const maxUploadSize = 20 << 20

// readUploadedSheet pulls the "file" part from a multipart upload and
// parses its first worksheet.
func readUploadedSheet(r *http.Request) (sheet.Sheet, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return sheet.Sheet{}, "", fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return sheet.Sheet{}, "", fmt.Errorf("missing file upload: %w", err)
	}
	defer file.Close()

	if !spreadsheet.IsSpreadsheetName(header.Filename) {
		return sheet.Sheet{}, "", fmt.Errorf("file %q is not an Excel workbook", header.Filename)
	}

	wb, err := spreadsheet.Read(file)
	if err != nil {
		return sheet.Sheet{}, "", err
	}

	name, rows := wb.First()
	if name == "" {
		return sheet.Sheet{}, "", sheet.ErrNoWorksheet
	}

	return sheet.Sheet{Name: name, Rows: rows}, header.Filename, nil
}

// formInt reads an integer form value, 0 when absent or malformed.
func formInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return 0
	}
	return v
}

// boolQuery is true when the parameter is "true" or "1".
func boolQuery(r *http.Request, key string) bool {
	v := r.URL.Query().Get(key)
	return v == "true" || v == "1"
}
