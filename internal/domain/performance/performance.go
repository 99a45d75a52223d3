// Package performance defines the tunjangan-kinerja calculation contract:
// check-in logs in, per-employee deduction lines and a rendered report out.
package performance

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/validator"
)

// ErrNoLines rejects a report request with nothing to render.
var ErrNoLines = errors.New("no calculation lines to report")

// Line is one employee's performance-allowance result for the period.
type Line struct {
	Nama            string          `json:"nama"`
	NIP             string          `json:"nip"`
	Keterangan      string          `json:"keterangan"`
	TotalDays       int             `json:"total_days"`
	Counts          map[string]int  `json:"counts"`
	CutPercentage   decimal.Decimal `json:"cut_percentage"`
	TunjanganBefore decimal.Decimal `json:"tunjangan_before"`
	NominalCut      decimal.Decimal `json:"nominal_cut"`
	TunjanganAfter  decimal.Decimal `json:"tunjangan_after"`
}

// CalculateResponse is the calculation endpoint payload.
type CalculateResponse struct {
	Lines []Line `json:"lines"`
}

// ReportRequest names the calendar month an archived report covers.
type ReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r ReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Service turns raw check-in logs into deduction lines and archives the
// monthly report.
type Service interface {
	// Calculate aggregates the check-in log, joins the baseline reference
	// by NIP then name, and applies the deduction scale. Employees with
	// no baseline get a zero allowance but still appear.
	Calculate(ctx context.Context, checkins sheet.Sheet) (*CalculateResponse, error)

	// Report renders lines to a spreadsheet and archives it under the
	// request's calendar month. An already-archived month is rejected
	// unless replace is set.
	Report(ctx context.Context, lines []Line, req ReportRequest, replace bool) ([]byte, string, error)
}
