// Package archive holds the period-keyed archives of every generated
// payroll file: payment extracts, performance reports, reconciled ADK
// Tukin files and the uploaded treasury templates they come from.
package archive

import (
	"time"

	"github.com/absensi-adk/backend-go/internal/domain/allowance"
)

// ExtractArchive is one archived meal-allowance payment extract. The
// extract text and the calculation snapshot it was generated from are
// stored together so a period can be audited later.
type ExtractArchive struct {
	ID           string                                 `json:"id"`
	EmployeeType string                                 `json:"employee_type"`
	PeriodMonth  int                                    `json:"period_month"`
	PeriodYear   int                                    `json:"period_year"`
	FileName     string                                 `json:"file_name"`
	Content      string                                 `json:"content,omitempty"`
	Results      map[string]allowance.CalculationResult `json:"results,omitempty"`
	CreatedAt    time.Time                              `json:"created_at"`
}

// ReportArchive is one archived performance-allowance report, keyed by
// the calendar-month date range it covers.
type ReportArchive struct {
	ID          string    `json:"id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// TukinArchive is one reconciled ADK Tukin file, keyed by template
// variant and period.
type TukinArchive struct {
	ID           string    `json:"id"`
	EmployeeType string    `json:"employee_type"`
	PeriodMonth  int       `json:"period_month"`
	PeriodYear   int       `json:"period_year"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// TukinTemplate is an uploaded treasury template, stored row by row so
// generation can replay it positionally.
type TukinTemplate struct {
	ID           string     `json:"id"`
	EmployeeType string     `json:"employee_type"`
	PeriodMonth  int        `json:"period_month"`
	PeriodYear   int        `json:"period_year"`
	FileName     string     `json:"file_name"`
	Rows         [][]string `json:"rows,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}
